// SPDX-License-Identifier: MIT

// Package logging builds the *slog.Logger shared by the windgrid binaries.
//
// Levels are parsed leniently (debug, info, warn/warning, error in any case,
// unknown → info) and the LOG_LEVEL environment variable supplies the
// default when no flag is given.
package logging

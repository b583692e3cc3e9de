// SPDX-License-Identifier: MIT

// Package report renders a simulation.Result for people and for files.
//
// Encode writes the machine-readable record (indented JSON or YAML, same
// field names in both). Summary writes the short console block the CLI
// prints after every run.
package report

// SPDX-License-Identifier: MIT
// Package: windgrid/builder
//
// errors.go - sentinel errors for the builder package.

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter below the constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrConstructFailed indicates a nil constructor or a core rejection.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvalidSpec indicates a textual topology spec Parse cannot read.
var ErrInvalidSpec = errors.New("builder: invalid topology spec")

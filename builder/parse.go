// SPDX-License-Identifier: MIT
// Package: windgrid/builder
//
// parse.go - textual topology specs for command-line use.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a topology spec:
//
//	path:N        Path(N)
//	ring:N        Ring(N)
//	star:N        Star(N)
//	grid:RxC      Grid(R, C)
//	random:N:P    RandomSparse(N, P)
//
// Size and probability ranges are checked when the constructor runs.
func Parse(spec string) (Constructor, error) {
	kind, rest, _ := strings.Cut(strings.ToLower(strings.TrimSpace(spec)), ":")
	bad := func() (Constructor, error) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}

	switch kind {
	case "path", "ring", "star":
		n, err := strconv.Atoi(rest)
		if err != nil {
			return bad()
		}
		switch kind {
		case "path":
			return Path(n), nil
		case "ring":
			return Ring(n), nil
		default:
			return Star(n), nil
		}
	case "grid":
		rs, cs, ok := strings.Cut(rest, "x")
		if !ok {
			return bad()
		}
		r, err1 := strconv.Atoi(rs)
		c, err2 := strconv.Atoi(cs)
		if err1 != nil || err2 != nil {
			return bad()
		}
		return Grid(r, c), nil
	case "random":
		ns, ps, ok := strings.Cut(rest, ":")
		if !ok {
			return bad()
		}
		n, err1 := strconv.Atoi(ns)
		p, err2 := strconv.ParseFloat(ps, 64)
		if err1 != nil || err2 != nil {
			return bad()
		}
		return RandomSparse(n, p), nil
	default:
		return bad()
	}
}

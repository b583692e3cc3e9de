// SPDX-License-Identifier: MIT
//
// File: edgeset.go
// Role: EdgeSet, the membership view of a reinforcement set.

package core

import "sort"

// EdgeSet is a set of edge IDs. The zero value is not usable; use NewEdgeSet.
type EdgeSet map[string]struct{}

// NewEdgeSet returns a set holding ids. Duplicates collapse.
func NewEdgeSet(ids ...string) EdgeSet {
	s := make(EdgeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Has reports membership. A nil set contains nothing.
func (s EdgeSet) Has(id string) bool {
	_, ok := s[id]

	return ok
}

// Add inserts id.
func (s EdgeSet) Add(id string) { s[id] = struct{}{} }

// Len returns the number of members.
func (s EdgeSet) Len() int { return len(s) }

// Clone returns an independent copy with room for extra more members.
func (s EdgeSet) Clone(extra int) EdgeSet {
	out := make(EdgeSet, len(s)+extra)
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

// Sorted returns the members in ascending lexicographic order.
func (s EdgeSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

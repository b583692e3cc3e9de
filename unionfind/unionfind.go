// SPDX-License-Identifier: MIT

package unionfind

import "github.com/katalvlaran/windgrid/core"

// UnionFind is a disjoint-set forest over a fixed set of string IDs.
// Not safe for concurrent use.
type UnionFind struct {
	index  map[string]int // ID → slot
	ids    []string       // slot → ID, registration order
	parent []int
	size   []int
	sets   int
}

// New registers every id as its own singleton set. Duplicate ids collapse
// onto their first registration.
// Complexity: O(n).
func New(ids []string) *UnionFind {
	uf := &UnionFind{
		index:  make(map[string]int, len(ids)),
		ids:    make([]string, 0, len(ids)),
		parent: make([]int, 0, len(ids)),
		size:   make([]int, 0, len(ids)),
	}
	for _, id := range ids {
		if _, ok := uf.index[id]; ok {
			continue
		}
		slot := len(uf.ids)
		uf.index[id] = slot
		uf.ids = append(uf.ids, id)
		uf.parent = append(uf.parent, slot)
		uf.size = append(uf.size, 1)
	}
	uf.sets = len(uf.ids)

	return uf
}

// root walks to the representative slot, halving the path as it goes.
func (uf *UnionFind) root(slot int) int {
	for uf.parent[slot] != slot {
		// Path compression: point slot at its grandparent.
		uf.parent[slot] = uf.parent[uf.parent[slot]]
		slot = uf.parent[slot]
	}

	return slot
}

func (uf *UnionFind) slot(x string) (int, error) {
	s, ok := uf.index[x]
	if !ok {
		return 0, core.ErrUnknownNode
	}

	return s, nil
}

// Find returns the representative ID of the set containing x.
func (uf *UnionFind) Find(x string) (string, error) {
	s, err := uf.slot(x)
	if err != nil {
		return "", err
	}

	return uf.ids[uf.root(s)], nil
}

// Union merges the sets containing x and y and reports whether they were
// previously distinct. The smaller set is attached under the larger one;
// on equal sizes x's root wins.
func (uf *UnionFind) Union(x, y string) (bool, error) {
	sx, err := uf.slot(x)
	if err != nil {
		return false, err
	}
	sy, err := uf.slot(y)
	if err != nil {
		return false, err
	}

	rx, ry := uf.root(sx), uf.root(sy)
	if rx == ry {
		return false, nil
	}
	if uf.size[rx] < uf.size[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	uf.sets--

	return true, nil
}

// Connected reports whether x and y are in the same set.
func (uf *UnionFind) Connected(x, y string) (bool, error) {
	rx, err := uf.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := uf.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// SetSize returns the number of members in x's set.
func (uf *UnionFind) SetSize(x string) (int, error) {
	s, err := uf.slot(x)
	if err != nil {
		return 0, err
	}

	return uf.size[uf.root(s)], nil
}

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int { return uf.sets }

// Len returns the number of registered IDs.
func (uf *UnionFind) Len() int { return len(uf.ids) }

// Groups returns every set as a slice of IDs. Sets are ordered by the
// registration position of their first member; members keep registration order.
// Complexity: O(n·α(n)).
func (uf *UnionFind) Groups() [][]string {
	groupOf := make(map[int]int, uf.sets) // root slot → group position
	groups := make([][]string, 0, uf.sets)
	for slot, id := range uf.ids {
		r := uf.root(slot)
		gi, ok := groupOf[r]
		if !ok {
			gi = len(groups)
			groupOf[r] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], id)
	}

	return groups
}

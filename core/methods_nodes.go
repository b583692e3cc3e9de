// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
// Determinism:
//   - Nodes() returns IDs in insertion order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "iter"

// AddNode registers a new node.
//
// Errors:
//   - ErrEmptyID       : id == "".
//   - ErrDuplicateNode : id already registered.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; ok {
		return ErrDuplicateNode
	}
	g.nodes[id] = len(g.nodeOrder)
	g.nodeOrder = append(g.nodeOrder, id)

	return nil
}

// HasNode reports whether id is a registered node.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// NodeIndex returns the insertion position of node id.
// Algorithms use it to order nodes and components deterministically.
// Complexity: O(1).
func (g *Graph) NodeIndex(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.nodes[id]
	if !ok {
		return 0, ErrUnknownNode
	}

	return idx, nil
}

// Nodes returns a copy of all node IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.nodeOrder))
	copy(out, g.nodeOrder)

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodeOrder)
}

// Neighbors returns the lazy sequence of edge IDs incident to node,
// in edge insertion order.
//
// The incidence list is snapshotted when Neighbors is called; edges added
// afterwards are not yielded by an already-returned sequence.
//
// Errors:
//   - ErrUnknownNode : node is not registered.
//
// Complexity: O(1) to obtain, O(deg(node)) to drain.
func (g *Graph) Neighbors(node string) (iter.Seq[string], error) {
	g.mu.RLock()
	if _, ok := g.nodes[node]; !ok {
		g.mu.RUnlock()
		return nil, ErrUnknownNode
	}
	positions := g.incident[node]
	positions = positions[:len(positions):len(positions)]
	g.mu.RUnlock()

	return func(yield func(string) bool) {
		for _, pos := range positions {
			g.mu.RLock()
			id := g.edgeOrder[pos].ID
			g.mu.RUnlock()
			if !yield(id) {
				return
			}
		}
	}, nil
}

// Degree returns the number of edges incident to node.
// Complexity: O(1).
func (g *Graph) Degree(node string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[node]; !ok {
		return 0, ErrUnknownNode
	}

	return len(g.incident[node]), nil
}

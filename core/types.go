// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, Edge and Graph declarations, NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for structural graph operations.
var (
	// ErrEmptyID indicates a node or edge identifier is the empty string.
	ErrEmptyID = errors.New("core: identifier is empty")

	// ErrDuplicateNode indicates AddNode was called with an ID already present.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrDuplicateEdge indicates AddEdge was called with an ID already present.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrUnknownEndpoint indicates an edge endpoint does not exist in the node set.
	ErrUnknownEndpoint = errors.New("core: unknown edge endpoint")

	// ErrInvalidEndpoints indicates both endpoints of an edge are the same node.
	ErrInvalidEndpoints = errors.New("core: edge endpoints must differ")

	// ErrInvalidCost indicates a negative, NaN or infinite reinforcement cost.
	ErrInvalidCost = errors.New("core: edge cost must be finite and non-negative")

	// ErrInvalidThreshold indicates a NaN wind threshold.
	ErrInvalidThreshold = errors.New("core: edge wind threshold is not a number")

	// ErrUnknownNode indicates an operation referenced a non-existent node.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrUnknownEdge indicates an operation referenced a non-existent edge.
	ErrUnknownEdge = errors.New("core: unknown edge")
)

// Edge is an undirected power line between nodes U and V.
//
// Cost ranks the line for reinforcement (cheaper first). WindThreshold is the
// wind strength at which the unreinforced line fails.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// U and V are the endpoint node IDs; order carries no meaning.
	U, V string

	// Cost is the non-negative reinforcement cost.
	Cost float64

	// WindThreshold is the minimum wind strength that brings the line down.
	WindThreshold float64
}

// Other returns the endpoint opposite to node, or "" if node is not an endpoint.
func (e Edge) Other(node string) string {
	switch node {
	case e.U:
		return e.V
	case e.V:
		return e.U
	default:
		return ""
	}
}

// Graph is the in-memory grid topology.
//
// nodes/edges map IDs to their insertion position; nodeOrder/edgeOrder keep
// that order; incident[node] lists positions into edgeOrder of incident edges.
type Graph struct {
	mu sync.RWMutex // guards everything below

	nodes     map[string]int // node ID → position in nodeOrder
	nodeOrder []string

	edges     map[string]int // edge ID → position in edgeOrder
	edgeOrder []Edge

	incident map[string][]int // node ID → positions of incident edges
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[string]int),
		edges:    make(map[string]int),
		incident: make(map[string][]int),
	}
}

// Package astar implements shortest-path search over an explicit,
// index-based node/edge graph using the A* algorithm with a Manhattan
// heuristic and a per-destination cost map layered on top of edge weight.
package astar

import "fmt"

// Node is a point on the 2-D plane the Manhattan heuristic is measured over.
type Node struct {
	X, Y float64
}

// Edge is a directed, weighted connection to another node.
type Edge struct {
	To   int
	Cost int
}

// NodeSpec describes one graph node and its outgoing edges; it is the unit
// NewGraph is built from, and the unit graph files round-trip through.
type NodeSpec struct {
	Pos        Node
	Neighbours []int
	Costs      []int
}

// Graph is an immutable, index-based adjacency list. There is nothing to
// close or free explicitly; once nothing references a *Graph it is
// reclaimed like any other Go value.
type Graph struct {
	nodes []Node
	adj   [][]Edge
}

// NewGraph validates and builds a Graph from a list of node specs. Every
// neighbour index must name another entry in the same list.
func NewGraph(entries []NodeSpec) (*Graph, error) {
	n := len(entries)
	if n == 0 {
		return nil, fmt.Errorf("%w: graph must have at least one node", ErrInvalidGraph)
	}

	nodes := make([]Node, n)
	adj := make([][]Edge, n)
	for i, e := range entries {
		if len(e.Neighbours) != len(e.Costs) {
			return nil, fmt.Errorf("%w: node %d has %d neighbours but %d costs", ErrInvalidGraph, i, len(e.Neighbours), len(e.Costs))
		}
		nodes[i] = e.Pos
		edges := make([]Edge, len(e.Neighbours))
		for k, to := range e.Neighbours {
			if to < 0 || to >= n {
				return nil, fmt.Errorf("%w: node %d references neighbour %d out of %d nodes", ErrInvalidGraph, i, to, n)
			}
			edges[k] = Edge{To: to, Cost: e.Costs[k]}
		}
		adj[i] = edges
	}
	return &Graph{nodes: nodes, adj: adj}, nil
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// Node returns the coordinates of node i.
func (g *Graph) Node(i int) Node {
	return g.nodes[i]
}

// Edges returns the outgoing edges of node i. The returned slice must not be
// mutated by the caller.
func (g *Graph) Edges(i int) []Edge {
	return g.adj[i]
}

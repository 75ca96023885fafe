package astar

import (
	"container/heap"
	"fmt"
	"math"
)

// heapEntry is one candidate node on the open set, tagged with the f-score
// it was pushed at and a monotonic insertion sequence used to break ties in
// insertion order, matching the reference implementation's FIFO tie-break.
type heapEntry struct {
	f, g, node, seq int
}

type openSet []heapEntry

func (h openSet) Len() int { return len(h) }
func (h openSet) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h openSet) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *openSet) Push(x any) {
	*h = append(*h, x.(heapEntry))
}

func (h *openSet) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func manhattan(a, b Node) int {
	return int(math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y))
}

// Route finds a shortest path from start to end, where the cost of moving
// onto a node v is edge.Cost + costMap[v]. costMap must have one entry per
// node; pass all zeroes for a plain edge-weighted search. Popped heap
// entries are not re-validated against the best known distance to their
// node -- the original algorithm's edges are relaxed unconditionally, and
// only the relaxation check (newCost < best known) decides whether a
// neighbour is ever pushed again, so a stale entry simply fails to improve
// anything when it is eventually popped.
//
// Returns the empty path, not an error, if end is unreachable from start, or
// if start == end (the algorithm never records a predecessor for the node it
// starts from, so the backtrack collapses to a single node and is treated as
// "no path").
func Route(g *Graph, costMap []int, start, end int) ([]int, error) {
	n := g.NodeCount()
	if len(costMap) != n {
		return nil, fmt.Errorf("%w: cost map has %d entries, graph has %d nodes", ErrOutOfRange, len(costMap), n)
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start index %d out of range [0,%d)", ErrOutOfRange, start, n)
	}
	if end < 0 || end >= n {
		return nil, fmt.Errorf("%w: end index %d out of range [0,%d)", ErrOutOfRange, end, n)
	}

	best := make([]int, n)
	prev := make([]int, n)
	for i := range best {
		best[i] = math.MaxInt
		prev[i] = -1
	}
	best[start] = 0

	open := &openSet{}
	heap.Init(open)
	seq := 0
	heap.Push(open, heapEntry{f: manhattan(g.nodes[start], g.nodes[end]), g: 0, node: start, seq: seq})
	seq++

	for open.Len() > 0 {
		cur := heap.Pop(open).(heapEntry)
		if cur.node == end {
			break
		}
		for _, e := range g.adj[cur.node] {
			cost := e.Cost + costMap[e.To]
			newCost := cur.g + cost
			if newCost < best[e.To] {
				best[e.To] = newCost
				prev[e.To] = cur.node
				heap.Push(open, heapEntry{
					f:    newCost + manhattan(g.nodes[e.To], g.nodes[end]),
					g:    newCost,
					node: e.To,
					seq:  seq,
				})
				seq++
			}
		}
	}

	path := make([]int, 0, n)
	for cur := end; cur != -1; cur = prev[cur] {
		path = append(path, cur)
	}
	if len(path) <= 1 {
		return []int{}, nil
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// RouteQuery is one start/end pair for a batch of routes sharing a graph
// and cost map.
type RouteQuery struct {
	Start, End int
}

// RouteResult is one query's outcome in a batch.
type RouteResult struct {
	Path []int
	Err  error
}

package astar

import "voicesep/pool"

// RouteBatch resolves every query concurrently against one immutable graph
// and cost map, using a worker pool sized to the host's CPUs. Results are
// returned in the same order as queries.
func RouteBatch(g *Graph, costMap []int, queries []RouteQuery) []RouteResult {
	results := make([]RouteResult, len(queries))
	if len(queries) == 0 {
		return results
	}

	p := pool.NewWorkerPool(len(queries))
	defer p.Close()

	for i, q := range queries {
		i, q := i, q
		p.Submit(func() {
			path, err := Route(g, costMap, q.Start, q.End)
			results[i] = RouteResult{Path: path, Err: err}
		})
	}
	p.Wait()
	return results
}

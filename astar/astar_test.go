package astar

import "testing"

// grid3x3 builds a 3x3 unit grid, 4-connected, unit edge costs:
//
//	0 1 2
//	3 4 5
//	6 7 8
func grid3x3(t *testing.T, remove int) *Graph {
	t.Helper()
	coords := [9]Node{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}
	adjacent := func(a, b int) bool {
		ax, ay := a%3, a/3
		bx, by := b%3, b/3
		dx, dy := ax-bx, ay-by
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		return dx+dy == 1
	}

	entries := make([]NodeSpec, 9)
	for i := range entries {
		entries[i].Pos = coords[i]
		if i == remove {
			continue
		}
		for j := 0; j < 9; j++ {
			if j == remove || j == i {
				continue
			}
			if adjacent(i, j) {
				entries[i].Neighbours = append(entries[i].Neighbours, j)
				entries[i].Costs = append(entries[i].Costs, 1)
			}
		}
	}

	g, err := NewGraph(entries)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return g
}

func zeroCostMap(n int) []int {
	return make([]int, n)
}

func TestRouteUnitGridGeodesic(t *testing.T) {
	g := grid3x3(t, -1)
	path, err := Route(g, zeroCostMap(9), 0, 8)
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if len(path) != 5 {
		t.Fatalf("expected a 5-node path across the diagonal, got %v", path)
	}
	if path[0] != 0 || path[len(path)-1] != 8 {
		t.Fatalf("path must start at 0 and end at 8, got %v", path)
	}
	for i := 1; i < len(path); i++ {
		if !isNeighbour(g, path[i-1], path[i]) {
			t.Fatalf("path[%d]=%d is not adjacent to path[%d]=%d", i-1, path[i-1], i, path[i])
		}
	}
}

func TestRouteAvoidsRemovedNode(t *testing.T) {
	g := grid3x3(t, 4)
	path, err := Route(g, zeroCostMap(9), 0, 8)
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if len(path) != 5 {
		t.Fatalf("expected a 5-node detour around node 4, got %v", path)
	}
	for _, n := range path {
		if n == 4 {
			t.Fatalf("path must not visit the removed node, got %v", path)
		}
	}
}

func TestRouteUnreachableIsEmpty(t *testing.T) {
	entries := []NodeSpec{
		{Pos: Node{0, 0}},
		{Pos: Node{1, 0}},
	}
	g, err := NewGraph(entries)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	path, err := Route(g, zeroCostMap(2), 0, 1)
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if len(path) != 0 {
		t.Fatalf("expected empty path for unreachable destination, got %v", path)
	}
}

func TestRouteSameStartAndEndIsEmpty(t *testing.T) {
	g := grid3x3(t, -1)
	path, err := Route(g, zeroCostMap(9), 4, 4)
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if len(path) != 0 {
		t.Fatalf("expected empty path when start == end, got %v", path)
	}
}

func TestRouteCostMapSteersAroundExpensiveNode(t *testing.T) {
	g := grid3x3(t, -1)
	costMap := zeroCostMap(9)
	costMap[4] = 100 // make crossing the center extremely expensive

	path, err := Route(g, costMap, 0, 8)
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	for _, n := range path {
		if n == 4 {
			t.Fatalf("path should avoid the expensive center node, got %v", path)
		}
	}
}

func TestRouteOutOfRange(t *testing.T) {
	g := grid3x3(t, -1)
	if _, err := Route(g, zeroCostMap(9), -1, 8); err == nil {
		t.Fatal("expected an error for a negative start index")
	}
	if _, err := Route(g, zeroCostMap(9), 0, 99); err == nil {
		t.Fatal("expected an error for an out-of-range end index")
	}
	if _, err := Route(g, zeroCostMap(3), 0, 8); err == nil {
		t.Fatal("expected an error for a mismatched cost map length")
	}
}

func isNeighbour(g *Graph, a, b int) bool {
	for _, e := range g.Edges(a) {
		if e.To == b {
			return true
		}
	}
	return false
}

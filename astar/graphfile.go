package astar

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// graphFile is the on-disk TOML shape for a Graph: one [[node]] table per
// node, in index order.
type graphFile struct {
	Node []nodeFile `toml:"node"`
}

type nodeFile struct {
	X          float64 `toml:"x"`
	Y          float64 `toml:"y"`
	Neighbours []int   `toml:"neighbours"`
	Costs      []int   `toml:"costs"`
}

// LoadGraphTOML reads a Graph from a TOML file.
func LoadGraphTOML(path string) (*Graph, error) {
	var gf graphFile
	if _, err := toml.DecodeFile(path, &gf); err != nil {
		return nil, fmt.Errorf("astar: failed to read graph file %s: %w", path, err)
	}

	entries := make([]NodeSpec, len(gf.Node))
	for i, n := range gf.Node {
		entries[i] = NodeSpec{
			Pos:        Node{X: n.X, Y: n.Y},
			Neighbours: n.Neighbours,
			Costs:      n.Costs,
		}
	}
	return NewGraph(entries)
}

// SaveGraphTOML writes a Graph to a TOML file.
func SaveGraphTOML(path string, g *Graph) error {
	gf := graphFile{Node: make([]nodeFile, g.NodeCount())}
	for i := 0; i < g.NodeCount(); i++ {
		pos := g.Node(i)
		edges := g.Edges(i)
		neighbours := make([]int, len(edges))
		costs := make([]int, len(edges))
		for k, e := range edges {
			neighbours[k] = e.To
			costs[k] = e.Cost
		}
		gf.Node[i] = nodeFile{X: pos.X, Y: pos.Y, Neighbours: neighbours, Costs: costs}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("astar: failed to create graph file %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(gf); err != nil {
		return fmt.Errorf("astar: failed to write graph file %s: %w", path, err)
	}
	return nil
}

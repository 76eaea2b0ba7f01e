// Package cfg builds a control-flow graph from a label sequence. Nodes are
// label texts; edges follow branch- and loop-specific construction rules
// that reproduce the legacy tool's diagram shape.
package cfg

// Edge is a directed edge between two labeled nodes.
type Edge struct {
	From string `json:"from" msgpack:"from"`
	To   string `json:"to" msgpack:"to"`
}

// Graph holds the generated control-flow graph. Nodes preserve first
// appearance order from the label sequence; Edges preserve first insertion
// order with duplicate pairs removed.
type Graph struct {
	Nodes []string `json:"nodes" msgpack:"nodes"`
	Edges []Edge   `json:"edges" msgpack:"edges"`

	// BranchHits counts how often each label was touched by the branch
	// rules while generating edges. Consumers use it for display only.
	BranchHits map[string]int `json:"branch_hits,omitempty" msgpack:"branch_hits"`
}

// Adjacency converts the edge list into an adjacency mapping. Successor
// lists preserve edge insertion order, which downstream path enumeration
// relies on.
func (g *Graph) Adjacency() map[string][]string {
	adj := make(map[string][]string, len(g.Nodes))
	for _, e := range g.Edges {
		adj[e.From] = append(adj[e.From], e.To)
	}
	return adj
}

// Complexity returns the cyclomatic complexity |E| - |V| + 2, floored at 1.
func (g *Graph) Complexity() int {
	c := len(g.Edges) - len(g.Nodes) + 2
	if c < 1 {
		c = 1
	}
	return c
}

// Package dot serializes a control-flow graph to the Graphviz DOT format.
// It is a thin export collaborator: it writes the graph description and
// performs no rendering.
package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/tokflow/tokflow/pkg/cfg"
)

// Marshal renders g as a DOT digraph.
func Marshal(g *cfg.Graph) []byte {
	var sb strings.Builder
	sb.WriteString("digraph CFG {\n")
	sb.WriteString("  rankdir=TB;\n")
	sb.WriteString("  node [shape=ellipse];\n")
	for _, n := range g.Nodes {
		fmt.Fprintf(&sb, "  %q;\n", n)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&sb, "  %q -> %q;\n", e.From, e.To)
	}
	sb.WriteString("}\n")
	return []byte(sb.String())
}

// Write serializes g to w in DOT format.
func Write(w io.Writer, g *cfg.Graph) error {
	if _, err := w.Write(Marshal(g)); err != nil {
		return fmt.Errorf("writing dot graph: %w", err)
	}
	return nil
}

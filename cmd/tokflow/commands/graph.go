package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tokflow/tokflow/pkg/cfg"
	"github.com/tokflow/tokflow/pkg/dot"
	"github.com/tokflow/tokflow/pkg/label"
)

// graphOutput is the JSON shape of the graph command.
type graphOutput struct {
	Nodes      []string   `json:"nodes"`
	Edges      []cfg.Edge `json:"edges"`
	Complexity int        `json:"complexity"`
}

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Generate the control-flow graph",
	Long: `Builds the control-flow graph from the label sequence: a deduplicated
node list and an ordered, deduplicated edge list, plus the cyclomatic
complexity. Use --dot to export a Graphviz description.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := setup()
		if err != nil {
			return err
		}

		source, err := readSource(args)
		if err != nil {
			return err
		}

		g := cfg.Build(label.Build(source))
		logger.Debug("built graph", "nodes", len(g.Nodes), "edges", len(g.Edges))

		if dotPath, _ := cmd.Flags().GetString("dot"); dotPath != "" {
			if err := writeDot(g, dotPath); err != nil {
				return err
			}
			if dotPath != "-" {
				fmt.Printf("DOT graph written to %s\n", dotPath)
			}
			return nil
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			out := graphOutput{Nodes: g.Nodes, Edges: g.Edges, Complexity: g.Complexity()}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		printGraph(g)
		return nil
	},
}

// writeDot exports the graph in DOT format to path, "-" meaning stdout.
func writeDot(g *cfg.Graph, path string) error {
	if path == "-" {
		return dot.Write(os.Stdout, g)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dot file: %w", err)
	}
	defer f.Close()
	return dot.Write(f, g)
}

// printGraph prints the graph in human-readable form.
func printGraph(g *cfg.Graph) {
	fmt.Printf("Nodes (%d):\n", len(g.Nodes))
	for _, n := range g.Nodes {
		fmt.Printf("  %s\n", n)
	}

	fmt.Printf("\nEdges (%d):\n", len(g.Edges))
	for _, e := range g.Edges {
		fmt.Printf("  %s -> %s\n", e.From, e.To)
	}

	fmt.Printf("\nCyclomatic Complexity: %d\n", g.Complexity())
}

func init() {
	graphCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	graphCmd.Flags().StringP("dot", "o", "", "Write Graphviz DOT output to a file (- for stdout)")
	RootCmd.AddCommand(graphCmd)
}

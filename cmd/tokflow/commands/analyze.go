package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tokflow/tokflow/internal/config"
	"github.com/tokflow/tokflow/internal/log"
	"github.com/tokflow/tokflow/pkg/cache"
	"github.com/tokflow/tokflow/pkg/cfg"
	"github.com/tokflow/tokflow/pkg/label"
	"github.com/tokflow/tokflow/pkg/paths"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Run the full pipeline and report everything",
	Long: `Runs labeling, graph generation and path enumeration on one source and
reports labels, nodes, edges, all start-to-end paths and the cyclomatic
complexity. With no file argument the source is entered interactively.
Results are cached by source content hash unless --no-cache is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, logger, err := setup()
		if err != nil {
			return err
		}

		source, err := readSource(args)
		if err != nil {
			return err
		}

		noCache, _ := cmd.Flags().GetBool("no-cache")
		result, err := analyzeSource(source, cfgFile, logger, !noCache)
		if err != nil {
			return err
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		printResult(result)
		return nil
	},
}

// analyzeSource runs the pipeline for one source text, consulting the
// result cache when enabled.
func analyzeSource(source string, cfgFile *config.Config, logger log.Logger, useCache bool) (*cache.Result, error) {
	var rc *cache.ResultCache
	key := cache.HashSource(source)

	if useCache && cfgFile.CacheEnabled {
		var err error
		rc, err = cache.OpenResults(cfgFile.CacheDir, cfgFile.CacheSize)
		if err != nil {
			// A broken cache never blocks analysis.
			logger.Warn("result cache unavailable", "error", err)
			rc = nil
		}
		if rc != nil {
			if cached, found := rc.Get(key); found {
				logger.Debug("result cache hit", "key", key)
				return cached, nil
			}
		}
	}

	seq := label.Build(source)
	g := cfg.Build(seq)
	allPaths, err := paths.Enumerate(g.Adjacency(), "start", "end", paths.Options{
		MaxDepth: cfgFile.MaxDepth,
		MaxPaths: cfgFile.MaxPaths,
	})
	if err != nil {
		return nil, fmt.Errorf("enumerating paths: %w", err)
	}

	result := &cache.Result{
		Labels:     label.Strings(seq),
		Nodes:      g.Nodes,
		Edges:      g.Edges,
		Paths:      allPaths,
		BranchHits: g.BranchHits,
		Complexity: g.Complexity(),
	}

	if rc != nil {
		rc.Put(key, result)
		if err := rc.Flush(); err != nil {
			logger.Warn("failed to persist result cache", "error", err)
		}
	}

	return result, nil
}

// printResult prints a full analysis in human-readable form.
func printResult(r *cache.Result) {
	fmt.Printf("Labels (%d):\n  %s\n", len(r.Labels), strings.Join(r.Labels, " "))

	fmt.Printf("\nNodes (%d):\n  %s\n", len(r.Nodes), strings.Join(r.Nodes, " "))

	fmt.Printf("\nEdges (%d):\n", len(r.Edges))
	for _, e := range r.Edges {
		fmt.Printf("  %s -> %s\n", e.From, e.To)
	}

	fmt.Printf("\nPaths (%d):\n", len(r.Paths))
	for _, p := range r.Paths {
		fmt.Printf("  %s\n", strings.Join(p, " -> "))
	}

	if len(r.BranchHits) > 0 {
		fmt.Printf("\nBranch hits:\n")
		for _, n := range r.Nodes {
			if hits, ok := r.BranchHits[n]; ok {
				fmt.Printf("  %s: %d\n", n, hits)
			}
		}
	}

	fmt.Printf("\nCyclomatic Complexity: %d\n", r.Complexity)
}

func init() {
	analyzeCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	analyzeCmd.Flags().Bool("no-cache", false, "Bypass the analysis result cache")
	RootCmd.AddCommand(analyzeCmd)
}

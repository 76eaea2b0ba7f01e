package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tokflow/tokflow/pkg/cfg"
	"github.com/tokflow/tokflow/pkg/label"
	"github.com/tokflow/tokflow/pkg/paths"
)

// pathsCmd represents the paths command
var pathsCmd = &cobra.Command{
	Use:   "paths [file]",
	Short: "Enumerate all start-to-end execution paths",
	Long: `Enumerates every complete path from start to end over the control-flow
graph. Loop back-edges contribute one synthetic "loop executes then exits"
path each. Enumeration is bounded; exceeding a limit reports an error
instead of running without bound.`,
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

		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		if maxDepth <= 0 {
			maxDepth = cfgFile.MaxDepth
		}
		maxPaths, _ := cmd.Flags().GetInt("max-paths")
		if maxPaths <= 0 {
			maxPaths = cfgFile.MaxPaths
		}

		g := cfg.Build(label.Build(source))
		result, err := paths.Enumerate(g.Adjacency(), "start", "end", paths.Options{
			MaxDepth: maxDepth,
			MaxPaths: maxPaths,
		})
		if err != nil {
			var limitErr *paths.LimitError
			if errors.As(err, &limitErr) {
				return fmt.Errorf("path space too large: %w", err)
			}
			return fmt.Errorf("enumerating paths: %w", err)
		}
		logger.Debug("enumerated paths", "count", len(result))

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		printPaths(result)
		return nil
	},
}

// printPaths prints enumerated paths in human-readable form.
func printPaths(result []paths.Path) {
	fmt.Printf("Paths (%d):\n", len(result))
	for _, p := range result {
		fmt.Printf("  %s\n", strings.Join(p, " -> "))
	}
}

func init() {
	pathsCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	pathsCmd.Flags().Int("max-depth", 0, "Maximum path length (0 = config default)")
	pathsCmd.Flags().Int("max-paths", 0, "Maximum number of paths (0 = config default)")
	RootCmd.AddCommand(pathsCmd)
}

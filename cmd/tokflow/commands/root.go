// Package commands provides the CLI commands for the tokflow tool.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tokflow/tokflow/internal/config"
	"github.com/tokflow/tokflow/internal/log"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "tokflow",
	Short: "tokflow - Token-heuristic control-flow graph extraction",
	Long: `tokflow derives a control-flow graph from simple imperative source text
using indentation and keyword matching instead of a parser, then enumerates
all execution paths between the synthetic start and end nodes.

Commands:
  labels      Extract the control-flow label sequence
  graph       Generate the control-flow graph (nodes and edges)
  paths       Enumerate all start-to-end execution paths
  analyze     Run the full pipeline and report everything
  cache       Inspect or clear the analysis result cache
  init        Initialize tokflow configuration interactively

Use "tokflow [command] --help" for more information about a command.`,
}

var verbose bool

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return RootCmd.Execute()
}

// SetVersion wires build metadata into the root command.
func SetVersion(version, buildTime string) {
	if buildTime != "" {
		RootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
		return
	}
	RootCmd.Version = version
}

// setup loads configuration and prepares the logger for a command run.
func setup() (*config.Config, log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logger := log.Default()
	if verbose || cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return cfg, logger, nil
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

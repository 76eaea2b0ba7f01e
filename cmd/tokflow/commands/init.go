package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/tokflow/tokflow/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize tokflow configuration interactively",
	Long: `Guides you through setting up tokflow configuration step by step.
Creates a config file with path enumeration limits and cache settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit()
	},
}

func runInit() error {
	defaults := config.DefaultConfig()

	maxDepth := strconv.Itoa(defaults.MaxDepth)
	maxPaths := strconv.Itoa(defaults.MaxPaths)
	cacheEnabled := defaults.CacheEnabled
	cacheDir := defaults.CacheDir

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Maximum path length").
				Description("Path enumeration aborts beyond this depth").
				Validate(validatePositiveInt).
				Value(&maxDepth),
			huh.NewInput().
				Title("Maximum path count").
				Description("Path enumeration aborts beyond this many paths").
				Validate(validatePositiveInt).
				Value(&maxPaths),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable the analysis result cache?").
				Value(&cacheEnabled),
			huh.NewInput().
				Title("Cache directory").
				Placeholder(defaults.CacheDir).
				Value(&cacheDir),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}

	cfg := config.DefaultConfig()
	cfg.MaxDepth, _ = strconv.Atoi(maxDepth)
	cfg.MaxPaths, _ = strconv.Atoi(maxPaths)
	cfg.CacheEnabled = cacheEnabled
	if cacheDir != "" {
		cfg.CacheDir = cacheDir
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	path := config.GlobalPath()
	if err := cfg.Save(path); err != nil {
		return err
	}

	fmt.Printf("Configuration written to %s\n", path)
	return nil
}

// validatePositiveInt rejects form input that is not a positive integer.
func validatePositiveInt(s string) error {
	i, err := strconv.Atoi(s)
	if err != nil || i <= 0 {
		return fmt.Errorf("must be a positive integer")
	}
	return nil
}

func init() {
	RootCmd.AddCommand(initCmd)
}

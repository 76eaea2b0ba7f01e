package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tokflow/tokflow/pkg/cache"
)

// cacheCmd groups result cache maintenance subcommands.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the analysis result cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show result cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _, err := setup()
		if err != nil {
			return err
		}

		rc, err := cache.OpenResults(cfgFile.CacheDir, cfgFile.CacheSize)
		if err != nil {
			return fmt.Errorf("opening result cache: %w", err)
		}
		stats := rc.Stats()

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			data, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("Entries: %d\n", stats.Entries)
		fmt.Printf("Bytes:   %d\n", stats.Bytes)
		fmt.Printf("Path:    %s\n", stats.Path)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached analysis results",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, logger, err := setup()
		if err != nil {
			return err
		}

		rc, err := cache.OpenResults(cfgFile.CacheDir, cfgFile.CacheSize)
		if err != nil {
			return fmt.Errorf("opening result cache: %w", err)
		}
		if err := rc.Clear(); err != nil {
			return fmt.Errorf("clearing result cache: %w", err)
		}

		logger.Info("result cache cleared", "dir", cfgFile.CacheDir)
		return nil
	},
}

func init() {
	cacheStatsCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	RootCmd.AddCommand(cacheCmd)
}

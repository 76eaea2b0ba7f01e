package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tokflow/tokflow/pkg/label"
)

// labelsCmd represents the labels command
var labelsCmd = &cobra.Command{
	Use:   "labels [file]",
	Short: "Extract the control-flow label sequence",
	Long: `Turns source lines into the ordered sequence of control-flow labels,
bounded by the synthetic start and end markers. Lines that do not begin
with a recognized keyword (if, elif, else, for, while) are ignored.`,
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

		seq := label.Build(source)
		texts := label.Strings(seq)
		logger.Debug("labeled source", "labels", len(texts))

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			data, err := json.MarshalIndent(texts, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Println(strings.Join(texts, " "))
		return nil
	},
}

func init() {
	labelsCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	RootCmd.AddCommand(labelsCmd)
}

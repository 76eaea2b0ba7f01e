package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
)

// readSource resolves the source text for a command: the first argument is
// a file path ("-" reads stdin); with no argument an interactive editor
// form is shown.
func readSource(args []string) (string, error) {
	if len(args) == 0 {
		return promptSource()
	}

	path := args[0]
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, expected a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", path, err)
	}
	return string(data), nil
}

// promptSource collects source text interactively.
func promptSource() (string, error) {
	var source string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Program source").
				Description("Paste or type the program to analyze (indentation matters)").
				Lines(12).
				Value(&source),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("interactive prompt failed: %w", err)
	}
	return source, nil
}

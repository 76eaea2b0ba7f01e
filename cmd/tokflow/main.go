// Package main implements the tokflow CLI.
// It provides commands for labeling source text, generating control-flow
// graphs and enumerating execution paths.
package main

import (
	"fmt"
	"os"

	"github.com/tokflow/tokflow/cmd/tokflow/commands"
)

var (
	version   = "dev"
	buildTime = ""
)

func main() {
	commands.SetVersion(version, buildTime)

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

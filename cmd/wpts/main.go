package main

import (
	"fmt"
	"os"

	"wpts/internal/cli"
	"wpts/internal/cli/commands"
	"wpts/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "wpts",
		Short:   "WPT test-case count aggregator",
		Long:    `Aggregates web-platform-test case records by the URL path of each record's file reference and writes the resulting path-to-count mapping to a JSON file.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

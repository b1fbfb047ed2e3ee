package commands

import (
	"wpts/internal/cli"
	"wpts/internal/config"
	"wpts/internal/history"
	"wpts/internal/report"
	"wpts/internal/storage"
	"wpts/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	Stats   *StatsCommand
	View    *ViewCommand
	History *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	jsonStorage := storage.NewJSONStorage(cfg)
	aggregator := report.NewAggregator()
	filter := report.NewFilter()
	formatter := ui.NewFormatter(cfg)
	viewer := ui.NewCountViewer(cfg)
	historyStore := history.NewMySQLStore(cfg)

	return &Commands{
		Run:     NewRunCommand(cfg, jsonStorage, aggregator, formatter, viewer, historyStore),
		Stats:   NewStatsCommand(cfg, jsonStorage, filter, formatter),
		View:    NewViewCommand(cfg, jsonStorage, filter, viewer),
		History: NewHistoryCommand(cfg, historyStore, formatter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Aggregate test-case records by URL path",
		Long:  "Load the records document, count test cases per URL path and write the path-to-count mapping to the output file",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.Input, "input", "i", "", "Path to the records JSON file (default: bbb.json)")
	runCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Path to the counts JSON file (default: out.json)")
	runCmd.Flags().BoolVar(&flags.History, "history", false, "Record the run summary in the history database")
	runCmd.Flags().BoolVar(&flags.OpenView, "open-view", false, "Open the interactive viewer when the run finishes")
	rootCmd.AddCommand(runCmd)

	// Stats command
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show counts from the last run",
		Long:  "Read the counts file and display totals plus a per-segment tree of paths",
		RunE:  c.Stats.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	statsCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Path to the counts JSON file (default: out.json)")
	statsCmd.Flags().StringVarP(&flags.Pattern, "filter", "f", "", "Filter paths by pattern (supports wildcards, e.g., '/xhr/*' or '*worker*')")
	rootCmd.AddCommand(statsCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Browse counts interactively",
		Long:  "Display the count table from the last run in an interactive viewer",
		RunE:  c.View.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	viewCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Path to the counts JSON file (default: out.json)")
	viewCmd.Flags().StringVarP(&flags.Pattern, "filter", "f", "", "Filter paths by pattern (supports wildcards, e.g., '/xhr/*' or '*worker*')")
	rootCmd.AddCommand(viewCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Long:  "List run summaries recorded in the history database, newest first",
		RunE:  c.History.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", config.DefaultHistoryLimit, "Maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}

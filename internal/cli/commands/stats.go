package commands

import (
	"github.com/spf13/cobra"

	"wpts/internal/config"
	"wpts/internal/report"
	"wpts/internal/storage"
	"wpts/internal/ui"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	config    *config.Config
	storage   storage.Storage
	filter    *report.Filter
	formatter *ui.Formatter
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(
	cfg *config.Config,
	st storage.Storage,
	filter *report.Filter,
	formatter *ui.Formatter,
) *StatsCommand {
	return &StatsCommand{
		config:    cfg,
		storage:   st,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (sc *StatsCommand) Execute(cmd *cobra.Command, args []string) error {
	table, err := sc.storage.LoadCounts()
	if err != nil {
		return err
	}

	table = sc.filter.FilterTable(table, sc.config.Flags.Pattern)
	sc.formatter.PrintCountStats(table)
	return nil
}

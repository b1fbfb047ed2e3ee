package commands

import (
	"github.com/spf13/cobra"

	"wpts/internal/config"
	"wpts/internal/history"
	"wpts/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config    *config.Config
	store     history.Store
	formatter *ui.Formatter
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, store history.Store, formatter *ui.Formatter) *HistoryCommand {
	return &HistoryCommand{
		config:    cfg,
		store:     store,
		formatter: formatter,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	runs, err := hc.store.List(hc.config.Flags.Limit)
	if err != nil {
		return err
	}

	hc.formatter.PrintRunHistory(runs)
	return nil
}

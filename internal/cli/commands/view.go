package commands

import (
	"github.com/spf13/cobra"

	"wpts/internal/config"
	"wpts/internal/report"
	"wpts/internal/storage"
	"wpts/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config  *config.Config
	storage storage.Storage
	filter  *report.Filter
	viewer  ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, st storage.Storage, filter *report.Filter, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config:  cfg,
		storage: st,
		filter:  filter,
		viewer:  viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	table, err := vc.storage.LoadCounts()
	if err != nil {
		return err
	}

	return vc.viewer.View(vc.filter.FilterTable(table, vc.config.Flags.Pattern))
}

package commands

import (
	"fmt"
	"time"

	"wpts/internal/config"
	"wpts/internal/domain"
	"wpts/internal/history"
	"wpts/internal/report"
	"wpts/internal/storage"
	"wpts/internal/ui"

	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config     *config.Config
	storage    storage.Storage
	aggregator *report.Aggregator
	formatter  *ui.Formatter
	viewer     ui.Viewer
	history    history.Store
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	st storage.Storage,
	aggregator *report.Aggregator,
	formatter *ui.Formatter,
	viewer ui.Viewer,
	historyStore history.Store,
) *RunCommand {
	return &RunCommand{
		config:     cfg,
		storage:    st,
		aggregator: aggregator,
		formatter:  formatter,
		viewer:     viewer,
		history:    historyStore,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// Load records
	records, err := rc.storage.LoadRecords()
	if err != nil {
		return err
	}

	// Create and set progress bar
	if len(records) > 0 {
		rc.aggregator.SetProgress(ui.NewProgressBar(len(records)))
	}

	// Aggregate counts per URL path
	start := time.Now()
	table, err := rc.aggregator.Aggregate(records)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	// Save counts; the output file is only written once the whole
	// table has been computed
	if err := rc.storage.SaveCounts(table); err != nil {
		return fmt.Errorf("failed to save counts: %w", err)
	}

	meta := domain.RunMeta{
		InputPath:       rc.config.GetInputPath(),
		OutputPath:      rc.config.GetOutputPath(),
		TotalRecords:    len(records),
		TotalPaths:      len(table),
		TotalCases:      table.Total(),
		ZeroCaseRecords: report.ZeroCaseCount(records),
		DurationSeconds: duration.Seconds(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}

	// Print stats
	rc.formatter.PrintRunSummary(meta)

	// Record history if flag is set
	if rc.config.Flags.History {
		if err := rc.history.Record(meta); err != nil {
			return fmt.Errorf("failed to record run history: %w", err)
		}
	}

	// Open the interactive viewer if flag is set
	if rc.config.Flags.OpenView {
		return rc.viewer.View(table)
	}
	return nil
}

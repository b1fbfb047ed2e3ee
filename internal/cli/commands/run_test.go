package commands

import (
	"encoding/json"
	"os"
	"reflect"
	"testing"

	"wpts/internal/config"
	"wpts/internal/domain"
	"wpts/internal/report"
	"wpts/internal/storage"
	"wpts/internal/ui"
)

// noopViewer satisfies ui.Viewer without starting a TUI.
type noopViewer struct{}

func (noopViewer) View(table domain.CountTable) error { return nil }

func newTestRunCommand(t *testing.T) (*RunCommand, *config.Config) {
	t.Helper()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	rc := NewRunCommand(
		cfg,
		storage.NewJSONStorage(cfg),
		report.NewAggregator(),
		ui.NewFormatter(cfg),
		noopViewer{},
		nil, // history store is only touched behind --history
	)
	return rc, cfg
}

func writeRecords(t *testing.T, cfg *config.Config, content string) {
	t.Helper()
	if err := os.WriteFile(cfg.GetInputPath(), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}
}

func readCounts(t *testing.T, cfg *config.Config) map[string]int {
	t.Helper()
	data, err := os.ReadFile(cfg.GetOutputPath())
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	var counts map[string]int
	if err := json.Unmarshal(data, &counts); err != nil {
		t.Fatalf("failed to parse output file: %v", err)
	}
	return counts
}

func TestRunCommand_Execute(t *testing.T) {
	t.Run("writes counts grouped by url path", func(t *testing.T) {
		rc, cfg := newTestRunCommand(t)
		writeRecords(t, cfg, `[
			{"file": "http://host1/xhr/send.any.html", "cases": [{}, {}, {}]},
			{"file": "https://host2/xhr/send.any.html?worker=1", "cases": [{}]},
			{"file": "http://host1/dom/ranges.html", "cases": []}
		]`)

		if err := rc.Execute(nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := map[string]int{
			"/xhr/send.any.html": 4,
			"/dom/ranges.html":   1,
		}
		if got := readCounts(t, cfg); !reflect.DeepEqual(got, expected) {
			t.Errorf("expected %v, got %v", expected, got)
		}
	})

	t.Run("empty input writes an empty object", func(t *testing.T) {
		rc, cfg := newTestRunCommand(t)
		writeRecords(t, cfg, `[]`)

		if err := rc.Execute(nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := readCounts(t, cfg); len(got) != 0 {
			t.Errorf("expected empty mapping, got %v", got)
		}
	})

	t.Run("missing input file fails", func(t *testing.T) {
		rc, cfg := newTestRunCommand(t)

		if err := rc.Execute(nil, nil); err == nil {
			t.Fatal("expected error for missing input file")
		}
		if _, err := os.Stat(cfg.GetOutputPath()); !os.IsNotExist(err) {
			t.Error("no output file should be written on failure")
		}
	})

	t.Run("schema error produces no output file", func(t *testing.T) {
		rc, cfg := newTestRunCommand(t)
		writeRecords(t, cfg, `[
			{"file": "http://host1/xhr/send.any.html", "cases": [{}]},
			{"file": "http://host1/dom/ranges.html"}
		]`)

		if err := rc.Execute(nil, nil); err == nil {
			t.Fatal("expected schema error")
		}
		if _, err := os.Stat(cfg.GetOutputPath()); !os.IsNotExist(err) {
			t.Error("no output file should be written on failure")
		}
	})

	t.Run("unparseable file reference produces no output file", func(t *testing.T) {
		rc, cfg := newTestRunCommand(t)
		writeRecords(t, cfg, `[
			{"file": "://not-a-url", "cases": [{}]}
		]`)

		if err := rc.Execute(nil, nil); err == nil {
			t.Fatal("expected url error")
		}
		if _, err := os.Stat(cfg.GetOutputPath()); !os.IsNotExist(err) {
			t.Error("no output file should be written on failure")
		}
	})
}

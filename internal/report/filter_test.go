package report

import (
	"testing"

	"wpts/internal/domain"
)

func TestFilter_FilterPaths(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		paths    []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			paths:    []string{"/xhr/send.any.html", "/dom/ranges.html", "/fetch/api/basic.html"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "prefix wildcard",
			paths:    []string{"/xhr/send.any.html", "/dom/ranges.html"},
			pattern:  "/xhr/*",
			expected: 1,
		},
		{
			name:     "substring wildcard",
			paths:    []string{"/xhr/send.any.html", "/workers/basic.html", "/workers/shared.html"},
			pattern:  "*workers*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			paths:    []string{"/xhr/send.any.html", "/dom/ranges.html"},
			pattern:  "ranges",
			expected: 1,
		},
		{
			name:     "no matches",
			paths:    []string{"/xhr/send.any.html", "/dom/ranges.html"},
			pattern:  "*websocket*",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterPaths(tt.paths, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d: %v", tt.expected, len(result), result)
			}
		})
	}
}

func TestFilter_FilterTable(t *testing.T) {
	filter := NewFilter()
	table := domain.CountTable{
		"/xhr/send.any.html":    3,
		"/xhr/abort.html":       1,
		"/dom/ranges.html":      2,
		"/fetch/api/basic.html": 5,
	}

	t.Run("empty pattern returns table unchanged", func(t *testing.T) {
		result := filter.FilterTable(table, "")
		if len(result) != len(table) {
			t.Errorf("expected %d entries, got %d", len(table), len(result))
		}
	})

	t.Run("pattern keeps matching entries with their counts", func(t *testing.T) {
		result := filter.FilterTable(table, "/xhr/*")
		if len(result) != 2 {
			t.Fatalf("expected 2 entries, got %d: %v", len(result), result)
		}
		if result["/xhr/send.any.html"] != 3 || result["/xhr/abort.html"] != 1 {
			t.Errorf("counts not preserved: %v", result)
		}
	})

	t.Run("original table untouched", func(t *testing.T) {
		filter.FilterTable(table, "/xhr/*")
		if len(table) != 4 {
			t.Errorf("source table was mutated: %v", table)
		}
	})
}

package report

import (
	"path"
	"strings"

	"wpts/internal/domain"
)

// Filter filters count-table paths by pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterPaths filters URL paths by pattern using wildcard matching
// Supports patterns like "/xhr/*" or "*worker*"
func (f *Filter) FilterPaths(paths []string, pattern string) []string {
	if pattern == "" {
		return paths
	}

	var filtered []string

	for _, p := range paths {
		// Try to match using path.Match (supports * and ? wildcards)
		matched, err := path.Match(pattern, p)
		if err == nil && matched {
			filtered = append(filtered, p)
			continue
		}

		// If pattern contains wildcards but path.Match didn't match,
		// try a more flexible substring match for patterns like "*worker*"
		if strings.Contains(pattern, "*") {
			parts := strings.Split(pattern, "*")
			allPartsMatch := true
			hasNonEmptyPart := false
			for _, part := range parts {
				if part == "" {
					continue
				}
				hasNonEmptyPart = true
				if !strings.Contains(p, part) {
					allPartsMatch = false
					break
				}
			}
			if allPartsMatch && hasNonEmptyPart {
				filtered = append(filtered, p)
			}
			continue
		}

		// If no wildcards, do a simple contains check
		if !strings.Contains(pattern, "?") && strings.Contains(p, pattern) {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

// FilterTable returns the subset of the table whose paths match pattern.
// An empty pattern returns the table unchanged.
func (f *Filter) FilterTable(table domain.CountTable, pattern string) domain.CountTable {
	if pattern == "" {
		return table
	}
	filtered := make(domain.CountTable)
	for _, p := range f.FilterPaths(table.Paths(), pattern) {
		filtered[p] = table[p]
	}
	return filtered
}

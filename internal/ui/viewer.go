package ui

import "wpts/internal/domain"

// Viewer displays a count table in an interactive TUI
type Viewer interface {
	View(table domain.CountTable) error
}

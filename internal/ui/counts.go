package ui

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"wpts/internal/config"
	"wpts/internal/domain"
)

// CountViewer displays the count table in an interactive TUI
type CountViewer struct {
	config *config.Config
}

// NewCountViewer creates a new CountViewer
func NewCountViewer(cfg *config.Config) *CountViewer {
	return &CountViewer{config: cfg}
}

// View displays the count table in an interactive TUI
func (cv *CountViewer) View(table domain.CountTable) error {
	if len(table) == 0 {
		color.Yellow("No paths in the count table")
		return nil
	}

	total := table.Total()

	// Two orderings, toggled with S: lexical by path, descending by count
	byPath := table.Paths()
	byCount := make([]string, len(byPath))
	copy(byCount, byPath)
	sort.SliceStable(byCount, func(i, j int) bool {
		return table[byCount[i]] > table[byCount[j]]
	})

	paths := byPath
	sortedByCount := false

	// Create the application
	app := tview.NewApplication()

	// Create list for paths (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(index int) string {
		path := paths[index]
		name := path
		if name == "" {
			name = "(no path)"
		}
		return fmt.Sprintf("[yellow]%d.[white] %s [green](%d)[white]", index+1, name, table[path])
	}

	reloadList := func() {
		list.Clear()
		for i := range paths {
			list.AddItem(getListItemText(i), "", 0, nil)
		}
	}
	reloadList()

	// Set list colors for better visibility
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Create stats header view (shows the selected path)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Create text view for path details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	// Create a container with right padding for the details view
	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	// Create right side layout: stats on top, details below
	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// Create simple flex layout: list on left (1/3), details on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	// Create header text view (so we can update it)
	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		order := "path"
		if sortedByCount {
			order = "count"
		}
		headerText := fmt.Sprintf(" Test Case Counts (%d paths, %d cases, sorted by %s) | Use ↑↓ to navigate, [yellow]S[white] to toggle sort, → to view details, ← to go back, Ctrl+C to exit ", len(paths), total, order)
		headerView.SetText(headerText)
	}
	updateHeader()

	// Update details when selection changes
	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(paths) {
			path := paths[index]
			statsView.SetText(cv.formatPathStats(path, index+1))
			detailsView.SetText(cv.formatPathDetails(path, table[path], total))
		}
	}

	// Set up keyboard handlers for list
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 's' || event.Rune() == 'S' {
				sortedByCount = !sortedByCount
				if sortedByCount {
					paths = byCount
				} else {
					paths = byPath
				}
				reloadList()
				list.SetCurrentItem(0)
				updateHeader()
				updateDetails()
				return nil
			}
		}
		return event
	})

	// Set up keyboard handlers for details view
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	// Update details when list selection changes
	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	// Set initial details
	updateDetails()

	// Create main layout with title
	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(
			tview.NewBox().SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
				return x, y, width, height
			}),
			1, 0, false,
		).
		AddItem(flex, 0, 1, true)

	// Run the application
	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatPathDetails formats a path entry for display using tview color tags ([green], [cyan], etc.)
func (cv *CountViewer) formatPathDetails(path string, count, total int) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	name := path
	if name == "" {
		name = "(no path)"
	}

	fmt.Fprintf(w, "[green]Path: %s[white]\n\n", name)
	fmt.Fprintf(w, "[cyan]Test cases: %d[white]\n", count)
	if total > 0 {
		fmt.Fprintf(w, "[yellow]Share: %.1f%% of %d total[white]\n", float64(count)*100/float64(total), total)
	}
	fmt.Fprintf(w, "\n")

	// Segment breakdown
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(segments) > 1 {
		fmt.Fprintf(w, "[yellow]Segments:[white]\n")
		for _, segment := range segments {
			if segment != "" {
				fmt.Fprintf(w, "  %s\n", segment)
			}
		}
	}

	w.Flush()
	return builder.String()
}

// formatPathStats formats the stats header for a path entry
func (cv *CountViewer) formatPathStats(path string, number int) string {
	var builder strings.Builder

	if path == "" {
		path = "(no path)"
	}

	statsLine := fmt.Sprintf("[cyan]path:[white] [yellow]%d[white]::[yellow]%s[white]", number, path)
	builder.WriteString(statsLine)
	builder.WriteString("\n")

	return builder.String()
}

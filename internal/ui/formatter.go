package ui

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"wpts/internal/config"
	"wpts/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintRunSummary displays the statistics of a finished aggregation run
func (f *Formatter) PrintRunSummary(meta domain.RunMeta) {
	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Aggregation Statistics                    ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	// Print table
	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	// Total Records
	fmt.Printf("│ %-31s │ ", "Total Records")
	color.White("%-27d │\n", meta.TotalRecords)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Distinct Paths
	fmt.Printf("│ %-31s │ ", "Distinct Paths")
	color.Green("%-27d │\n", meta.TotalPaths)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Total Test Cases
	fmt.Printf("│ %-31s │ ", "Total Test Cases")
	color.Green("%-27d │\n", meta.TotalCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Zero-Case Records
	fmt.Printf("│ %-31s │ ", "Zero-Case Records")
	color.Yellow("%-27d │\n", meta.ZeroCaseRecords)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Duration
	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Timestamp
	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	color.Green("✓ Wrote %d path(s) to %s", meta.TotalPaths, meta.OutputPath)
}

// PrintCountStats displays totals for a count table followed by a
// per-segment tree of paths with their counts
func (f *Formatter) PrintCountStats(table domain.CountTable) {
	// Clear terminal screen
	fmt.Print("\033[2J\033[H")

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Test Case Counts by Path                   ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")
	fmt.Printf("│ %-31s │ ", "Distinct Paths")
	color.Green("%-27d │\n", len(table))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")
	fmt.Printf("│ %-31s │ ", "Total Test Cases")
	color.Green("%-27d │\n", table.Total())
	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	if len(table) == 0 {
		fmt.Println()
		color.Yellow("No paths in the count table")
		return
	}

	fmt.Println()
	f.printPathTree(table)
}

// PrintRunHistory displays recorded run summaries, newest first
func (f *Formatter) PrintRunHistory(runs []domain.RunMeta) {
	if len(runs) == 0 {
		color.Yellow("No recorded runs")
		return
	}

	fmt.Print("\n")
	color.Cyan("Recorded aggregation runs (%d):\n", len(runs))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tRECORDS\tPATHS\tCASES\tZERO-CASE\tDURATION\tINPUT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.2fs\t%s\n",
			run.Timestamp,
			run.TotalRecords,
			run.TotalPaths,
			run.TotalCases,
			run.ZeroCaseRecords,
			run.DurationSeconds,
			run.InputPath,
		)
	}
	w.Flush()
}

// TreeNode represents a node in the path tree structure
type TreeNode struct {
	Name     string
	Children map[string]*TreeNode
	Count    int
	IsLeaf   bool
}

// printPathTree prints the count table as a tree of path segments
func (f *Formatter) printPathTree(table domain.CountTable) {
	root := &TreeNode{
		Name:     "",
		Children: make(map[string]*TreeNode),
	}

	for _, path := range table.Paths() {
		parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
		current := root

		for i, part := range parts {
			if part == "" {
				// Keep a visible name for keys like "" or trailing slashes
				part = "/"
			}

			if current.Children[part] == nil {
				current.Children[part] = &TreeNode{
					Name:     part,
					Children: make(map[string]*TreeNode),
				}
			}

			current = current.Children[part]

			// If this is the last segment, attach the count
			if i == len(parts)-1 {
				current.IsLeaf = true
				current.Count += table[path]
			}
		}
	}

	f.printTreeNode(root, "", true)
}

func (f *Formatter) printTreeNode(node *TreeNode, prefix string, isRoot bool) {
	// Sort children for consistent output
	var keys []string
	for key := range node.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		child := node.Children[key]
		isLastChild := i == len(keys)-1

		var connector string
		if isRoot {
			connector = ""
		} else if isLastChild {
			connector = prefix + "   |_"
		} else {
			connector = prefix + "  |_"
		}

		if child.IsLeaf {
			color.Yellow("%s%s %s", connector, child.Name, color.GreenString("(%d)", child.Count))
		} else {
			color.Cyan("%s%s", connector, child.Name)
		}

		var newPrefix string
		if isRoot {
			newPrefix = "  "
		} else if isLastChild {
			newPrefix = strings.ReplaceAll(prefix, "|", " ") + "  "
		} else {
			newPrefix = prefix + "  |"
		}
		f.printTreeNode(child, newPrefix, false)
	}
}

package report

import (
	"fmt"

	"wpts/internal/domain"
	"wpts/internal/ui"
)

// Aggregator builds a count table from a sequence of records.
type Aggregator struct {
	progress *ui.ProgressBar
}

// NewAggregator creates a new Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// SetProgress sets the progress bar updated while aggregating.
func (a *Aggregator) SetProgress(progress *ui.ProgressBar) {
	a.progress = progress
}

// Aggregate scans the records in order and accumulates the test-case
// count per URL path. A record with an empty case list still counts as
// one occurrence for its path, so tested files without a sub-case
// breakdown are not dropped from the totals. The input is not mutated;
// a fresh table is returned. Any unparseable file reference aborts the
// whole pass.
func (a *Aggregator) Aggregate(records []domain.Record) (domain.CountTable, error) {
	table := make(domain.CountTable)

	for i, record := range records {
		key, err := PathOf(record.File)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		n := len(record.Cases)
		if n == 0 {
			n = 1
		}
		table.Add(key, n)

		if a.progress != nil {
			a.progress.Update(i+1, len(table))
		}
	}

	return table, nil
}

// ZeroCaseCount returns how many records have an empty case list, i.e.
// how many contributed to the table through the floor correction.
func ZeroCaseCount(records []domain.Record) int {
	var count int
	for _, record := range records {
		if len(record.Cases) == 0 {
			count++
		}
	}
	return count
}

package domain

import "sort"

// CountTable maps a URL path (the grouping key) to its accumulated
// test-case count. Built fresh per run and only ever incremented.
type CountTable map[string]int

// Add increments the count for key, treating a missing key as 0.
func (t CountTable) Add(key string, n int) {
	t[key] += n
}

// Total returns the sum of all counts in the table.
func (t CountTable) Total() int {
	var total int
	for _, n := range t {
		total += n
	}
	return total
}

// Paths returns the table's keys in lexical order.
func (t CountTable) Paths() []string {
	paths := make([]string, 0, len(t))
	for p := range t {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

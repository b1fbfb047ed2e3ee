package history

import "testing"

func TestIsValidTableName(t *testing.T) {
	tests := []struct {
		name  string
		table string
		valid bool
	}{
		{"default table", "wpt_runs", true},
		{"alphanumeric", "runs2025", true},
		{"empty", "", false},
		{"leading underscore", "_runs", false},
		{"backtick injection", "runs`; DROP TABLE x", false},
		{"spaces", "wpt runs", false},
		{"too long", string(make([]byte, 65)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidTableName(tt.table); got != tt.valid {
				t.Errorf("isValidTableName(%q) = %v, expected %v", tt.table, got, tt.valid)
			}
		})
	}
}

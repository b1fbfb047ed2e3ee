package storage

import (
	"wpts/internal/config"
	"wpts/internal/domain"
)

// Storage loads test-case records and persists the aggregated counts.
type Storage interface {
	LoadRecords() ([]domain.Record, error)
	SaveCounts(table domain.CountTable) error
	// LoadCounts reads back a previously saved table (for stats and view).
	LoadCounts() (domain.CountTable, error)
}

// JSONStorage reads records from and writes counts to the configured
// JSON files.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage backed by the config's input/output paths.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"wpts/internal/domain"
)

// rawRecord mirrors one input element with pointer fields so that
// missing keys are distinguishable from empty values.
type rawRecord struct {
	File  *string            `json:"file"`
	Cases *[]json.RawMessage `json:"cases"`
}

// LoadRecords reads the whole input document and decodes it into
// records. The document must be a JSON array of objects, each with a
// string `file` and an array `cases`; the first offending element
// aborts the load with a schema error naming its index.
func (s *JSONStorage) LoadRecords() ([]domain.Record, error) {
	path := s.cfg.GetInputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records file: %w", err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}

	records := make([]domain.Record, 0, len(elements))
	for i, element := range elements {
		var raw rawRecord
		if err := json.Unmarshal(element, &raw); err != nil {
			return nil, &domain.SchemaError{Index: i, Reason: "not an object with string `file` and array `cases`"}
		}
		if raw.File == nil {
			return nil, &domain.SchemaError{Index: i, Reason: "missing required field `file`"}
		}
		if raw.Cases == nil {
			return nil, &domain.SchemaError{Index: i, Reason: "missing required field `cases`"}
		}
		records = append(records, domain.Record{File: *raw.File, Cases: *raw.Cases})
	}

	return records, nil
}

// SaveCounts writes the count table to the configured JSON output file
// in a single write.
func (s *JSONStorage) SaveCounts(table domain.CountTable) error {
	if table == nil {
		table = domain.CountTable{}
	}

	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal counts: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write counts: %w", err)
	}
	return nil
}

// LoadCounts reads the count table from the configured JSON output file.
func (s *JSONStorage) LoadCounts() (domain.CountTable, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read counts file: %w", err)
	}
	var table domain.CountTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse counts: %w", err)
	}
	return table, nil
}

package domain

import (
	"encoding/json"
	"fmt"
)

// Record is a single test-case record from the input document.
type Record struct {
	File  string            // URL-like reference to the test file
	Cases []json.RawMessage // Case entries; only the length matters
}

// SchemaError reports a record that does not match the expected shape
// (missing field, wrong-typed field, or a non-object element).
type SchemaError struct {
	Index  int    // Position of the record in the input array
	Reason string // What was wrong with it
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("record %d: %s", e.Index, e.Reason)
}

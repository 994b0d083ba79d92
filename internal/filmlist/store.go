package filmlist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes records as a JSON array of positional arrays, the same shape
// the film list itself uses for its "X" entries.
func Save(path string, records []Record) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.values())
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("encode film records: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create extract directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write film records: %w", err)
	}
	return nil
}

// Load reads a saved extract. Rows with fewer than eight fields are dropped
// instead of failing the whole file.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read film records: %w", err)
	}
	var rows [][]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse film records: %w", err)
	}
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		if record, ok := fromValues(row); ok {
			records = append(records, record)
		}
	}
	return records, nil
}

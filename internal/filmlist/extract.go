package filmlist

import (
	"encoding/json"
	"fmt"
	"io"
)

// Extract walks a Filmliste document and returns the records matching the
// keywords. The duplicate-key layout rules out a plain Unmarshal, so the
// reader is consumed token by token: every value under an "X" key is decoded
// as one positional record, everything else (the "Filmliste" metadata
// entries) is skipped.
func Extract(r io.Reader, keywords []string) ([]Record, error) {
	dec := json.NewDecoder(r)

	open, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read document start: %w", err)
	}
	if delim, ok := open.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("unexpected document start %v", open)
	}

	var records []Record
	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read record key: %w", err)
		}
		key, ok := keyToken.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key token %v", keyToken)
		}

		if key != "X" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("skip %q entry: %w", key, err)
			}
			continue
		}

		var values []any
		if err := dec.Decode(&values); err != nil {
			return nil, fmt.Errorf("decode film record: %w", err)
		}
		record, ok := fromValues(values)
		if !ok {
			continue
		}
		if record.MatchesKeywords(keywords) {
			records = append(records, record)
		}
	}

	return records, nil
}

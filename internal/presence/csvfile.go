package presence

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"bahnarchiv/internal/services"
)

// delimiterCandidates are tried in order when sniffing; comma wins ties.
var delimiterCandidates = []rune{',', ';', '\t', '|'}

// table is a CSV file held in memory with its detected delimiter, so the
// annotated output can be written back in the same dialect it arrived in.
type table struct {
	header []string
	rows   [][]string
	comma  rune
}

// readTable loads a CSV file. A UTF-8 byte order mark is tolerated and
// stripped, and the field delimiter is sniffed from the header line.
func readTable(path string) (*table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "presence", "read-csv", "read file", err)
	}
	text := strings.TrimPrefix(string(data), "\ufeff")

	comma := sniffDelimiter(text)
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = comma
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "presence", "read-csv", "parse rows", err)
	}
	if len(records) == 0 {
		return nil, services.Wrap(services.ErrValidation, "presence", "read-csv", "file has no header row", nil)
	}

	return &table{header: records[0], rows: records[1:], comma: comma}, nil
}

// writeTo writes the table, header first, using the delimiter it was read
// with. The parent directory is created as needed.
func (t *table) writeTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return services.Wrap(services.ErrValidation, "presence", "write-csv", "create directory", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return services.Wrap(services.ErrValidation, "presence", "write-csv", "create file", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	writer.Comma = t.comma
	if err := writer.Write(t.header); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return f.Close()
}

// columnIndex finds a header column by exact name, -1 when absent.
func (t *table) columnIndex(name string) int {
	for i, col := range t.header {
		if col == name {
			return i
		}
	}
	return -1
}

// cell returns the row value at index, empty when the row is short.
func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}

// sniffDelimiter picks the candidate delimiter that occurs most often in the
// first line. Comma is the fallback for a line with none of them.
func sniffDelimiter(text string) rune {
	line := text
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	best := ','
	bestCount := 0
	for _, cand := range delimiterCandidates {
		if n := strings.Count(line, string(cand)); n > bestCount {
			best = cand
			bestCount = n
		}
	}
	return best
}

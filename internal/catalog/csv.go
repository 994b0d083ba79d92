package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// CSVHeader is the column layout used by catalog CSV exports. Downstream
// tools (presence checks, spreadsheets) rely on this exact order.
var CSVHeader = []string{"SeasonEpisode", "Date", "AbsEpisode", "Title", "TargetFilename"}

// WriteCSV exports episodes with the canonical column layout.
func WriteCSV(path string, episodes []Episode) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, ep := range episodes {
		abs := ""
		if ep.AbsEpisode > 0 {
			abs = strconv.Itoa(ep.AbsEpisode)
		}
		record := []string{ep.SeasonEpisodeCode, ep.AirDateISO, abs, ep.Title, ep.TargetFilename}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}

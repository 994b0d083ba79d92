package presence

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bahnarchiv/internal/logging"
	"bahnarchiv/internal/services"
)

// CheckSummary counts the outcome of one filename check run.
type CheckSummary struct {
	Found   int
	Missing int
}

// CheckFiles matches each listing row against the archive by canonical
// filename prefix: "<prefix> <SeasonEpisode> - <Date> - <AbsEpisode>". The
// first .mp4 whose name starts with that prefix counts as the row's file.
// Two columns, file_exists and matched_filename, are appended and the result
// is written to outPath.
func CheckFiles(csvPath, videoDir, prefix, outPath string, logger *slog.Logger) (CheckSummary, error) {
	var summary CheckSummary
	log := logging.NewComponentLogger(logger, "presence")

	t, err := readTable(csvPath)
	if err != nil {
		return summary, err
	}
	seIdx := t.columnIndex("SeasonEpisode")
	dateIdx := t.columnIndex("Date")
	if dateIdx < 0 {
		dateIdx = t.columnIndex("BroadcastDate")
	}
	absIdx := t.columnIndex("AbsEpisode")
	if seIdx < 0 || dateIdx < 0 || absIdx < 0 {
		return summary, services.Wrap(services.ErrValidation, "presence", "check",
			"missing required columns (SeasonEpisode, Date or BroadcastDate, AbsEpisode)", nil)
	}

	names, err := listVideoNames(videoDir)
	if err != nil {
		return summary, services.Wrap(services.ErrValidation, "presence", "check", "scan video directory", err)
	}

	t.header = append(t.header, "file_exists", "matched_filename")
	for i, row := range t.rows {
		want := fmt.Sprintf("%s %s - %s - %s",
			prefix,
			strings.TrimSpace(cell(row, seIdx)),
			strings.TrimSpace(cell(row, dateIdx)),
			strings.TrimSpace(cell(row, absIdx)))
		matched := ""
		for _, name := range names {
			if strings.HasPrefix(name, want) {
				matched = name
				break
			}
		}
		if matched != "" {
			summary.Found++
		} else {
			summary.Missing++
		}
		row = padTo(row, len(t.header)-2)
		t.rows[i] = append(row, presentValue(matched != ""), matched)
	}

	if err := t.writeTo(outPath); err != nil {
		return summary, err
	}
	log.Info("checked listing against archive",
		logging.Int("found", summary.Found),
		logging.Int("missing", summary.Missing),
		logging.String("output", outPath))
	return summary, nil
}

func listVideoNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".mp4") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

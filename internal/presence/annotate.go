package presence

import (
	"fmt"
	"log/slog"

	"bahnarchiv/internal/epkey"
	"bahnarchiv/internal/logging"
	"bahnarchiv/internal/services"
)

// PresentColumn is the name of the inserted presence column.
const PresentColumn = "VideoPresent"

// AnnotateSummary counts the outcome of one annotation run. Unparsed counts
// video files whose names yield no identity key; those files cannot satisfy
// any row.
type AnnotateSummary struct {
	Present  int
	Missing  int
	Unparsed int
}

// Annotate reads the episode listing at csvPath, checks each row against the
// video files under videoDir, and writes the result to outPath with a
// VideoPresent column inserted between AbsEpisode and Title.
//
// The listing must carry SeasonEpisode, AbsEpisode, Title, and TargetFilename
// columns plus a date column named either Date or BroadcastDate. Title must
// immediately follow AbsEpisode so the inserted column lands in a stable
// position, and a listing that already carries VideoPresent is rejected
// instead of annotated twice.
func Annotate(csvPath, videoDir, outPath string, recursive bool, logger *slog.Logger) (AnnotateSummary, error) {
	var summary AnnotateSummary
	log := logging.NewComponentLogger(logger, "presence")

	t, err := readTable(csvPath)
	if err != nil {
		return summary, err
	}
	if t.columnIndex(PresentColumn) >= 0 {
		return summary, services.Wrap(services.ErrValidation, "presence", "annotate",
			fmt.Sprintf("column %s already present", PresentColumn), nil)
	}

	seIdx := t.columnIndex("SeasonEpisode")
	dateIdx := t.columnIndex("Date")
	if dateIdx < 0 {
		dateIdx = t.columnIndex("BroadcastDate")
	}
	absIdx := t.columnIndex("AbsEpisode")
	titleIdx := t.columnIndex("Title")
	targetIdx := t.columnIndex("TargetFilename")
	if seIdx < 0 || dateIdx < 0 || absIdx < 0 || titleIdx < 0 || targetIdx < 0 {
		return summary, services.Wrap(services.ErrValidation, "presence", "annotate",
			"missing required columns (SeasonEpisode, Date or BroadcastDate, AbsEpisode, Title, TargetFilename)", nil)
	}
	if titleIdx != absIdx+1 {
		return summary, services.Wrap(services.ErrValidation, "presence", "annotate",
			"Title must immediately follow AbsEpisode", nil)
	}

	keys, err := epkey.IndexDir(videoDir, recursive)
	if err != nil {
		return summary, services.Wrap(services.ErrValidation, "presence", "annotate", "scan video directory", err)
	}
	unparsed, err := epkey.Unparsed(videoDir, recursive)
	if err != nil {
		return summary, services.Wrap(services.ErrValidation, "presence", "annotate", "scan video directory", err)
	}
	summary.Unparsed = len(unparsed)
	for _, name := range unparsed {
		log.Warn("filename yields no identity key", logging.String("file", name))
	}

	insertAt := absIdx + 1
	t.header = insertColumn(t.header, insertAt, PresentColumn)
	for i, row := range t.rows {
		key := epkey.FromRow(epkey.Row{
			SeasonEpisode: cell(row, seIdx),
			Date:          cell(row, dateIdx),
			AbsEpisode:    cell(row, absIdx),
		})
		present := keys.Contains(key)
		if present {
			summary.Present++
		} else {
			summary.Missing++
		}
		t.rows[i] = insertColumn(padTo(row, len(t.header)-1), insertAt, presentValue(present))
	}

	if err := t.writeTo(outPath); err != nil {
		return summary, err
	}
	log.Info("annotated listing",
		logging.Int("present", summary.Present),
		logging.Int("missing", summary.Missing),
		logging.String("output", outPath))
	return summary, nil
}

func presentValue(present bool) string {
	if present {
		return "True"
	}
	return "False"
}

func insertColumn(row []string, index int, value string) []string {
	out := make([]string, 0, len(row)+1)
	out = append(out, row[:index]...)
	out = append(out, value)
	return append(out, row[index:]...)
}

func padTo(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}

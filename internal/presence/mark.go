package presence

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"bahnarchiv/internal/logging"
	"bahnarchiv/internal/services"
)

// Match type values written into the marked spreadsheet.
const (
	MatchExact  = "exact"
	MatchByCode = "by_episode_code"
)

var episodeCodePattern = regexp.MustCompile(`(S\d{2,4}E\d{1,3})`)

// MarkSummary counts the outcome of one spreadsheet marking run.
type MarkSummary struct {
	Exact   int
	ByCode  int
	Missing int
}

// folderIndex supports both lookup strategies over one directory scan:
// exact filename and season/episode code.
type folderIndex struct {
	names  map[string]struct{}
	byCode map[string]string
}

func indexFolder(names []string) *folderIndex {
	idx := &folderIndex{
		names:  make(map[string]struct{}, len(names)),
		byCode: make(map[string]string),
	}
	for _, name := range names {
		idx.names[name] = struct{}{}
		if code := episodeCodePattern.FindString(strings.ToUpper(name)); code != "" {
			if _, ok := idx.byCode[code]; !ok {
				idx.byCode[code] = name
			}
		}
	}
	return idx
}

// lookup resolves a proposed filename to what is on disk. Exact name wins;
// otherwise a file carrying the same season/episode code counts as present
// under a different name.
func (idx *folderIndex) lookup(target string) (matchType string, found bool) {
	if _, ok := idx.names[target]; ok {
		return MatchExact, true
	}
	if code := episodeCodePattern.FindString(strings.ToUpper(target)); code != "" {
		if _, ok := idx.byCode[code]; ok {
			return MatchByCode, true
		}
	}
	return "", false
}

// MarkSpreadsheet reads a match report spreadsheet, checks every proposed
// filename against videoDir, and writes a copy to outPath with file_exists
// and match_type columns appended. Rows without a proposed filename get
// empty marks.
func MarkSpreadsheet(xlsxPath, videoDir, outPath string, logger *slog.Logger) (MarkSummary, error) {
	var summary MarkSummary
	log := logging.NewComponentLogger(logger, "presence")

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return summary, services.Wrap(services.ErrValidation, "presence", "mark", "open spreadsheet", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return summary, services.Wrap(services.ErrValidation, "presence", "mark", "read rows", err)
	}
	if len(rows) == 0 {
		return summary, services.Wrap(services.ErrValidation, "presence", "mark", "spreadsheet is empty", nil)
	}

	targetIdx := -1
	for i, col := range rows[0] {
		if col == "new_filename" {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return summary, services.Wrap(services.ErrValidation, "presence", "mark", "missing new_filename column", nil)
	}

	names, err := listVideoNames(videoDir)
	if err != nil {
		return summary, services.Wrap(services.ErrValidation, "presence", "mark", "scan video directory", err)
	}
	idx := indexFolder(names)

	width := len(rows[0])
	out := excelize.NewFile()
	outSheet := out.GetSheetName(0)
	header := append(padTo(append([]string(nil), rows[0]...), width), "file_exists", "match_type")
	if err := out.SetSheetRow(outSheet, "A1", &header); err != nil {
		return summary, err
	}
	for i, row := range rows[1:] {
		row = padTo(append([]string(nil), row...), width)
		target := strings.TrimSpace(cell(row, targetIdx))
		exists, matchType := "", ""
		if target != "" {
			kind, found := idx.lookup(target)
			exists, matchType = presentValue(found), kind
			switch kind {
			case MatchExact:
				summary.Exact++
			case MatchByCode:
				summary.ByCode++
			default:
				summary.Missing++
			}
		}
		row = append(row, exists, matchType)
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return summary, err
		}
		if err := out.SetSheetRow(outSheet, cellName, &row); err != nil {
			return summary, err
		}
	}
	if err := out.SaveAs(outPath); err != nil {
		return summary, services.Wrap(services.ErrValidation, "presence", "mark", "write spreadsheet", err)
	}

	log.Info("marked spreadsheet",
		logging.Int("exact", summary.Exact),
		logging.Int("by_code", summary.ByCode),
		logging.Int("missing", summary.Missing),
		logging.String("output", outPath))
	return summary, nil
}

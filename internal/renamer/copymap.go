package renamer

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"bahnarchiv/internal/fileutil"
	"bahnarchiv/internal/logging"
	"bahnarchiv/internal/services"
	"bahnarchiv/internal/textutil"
)

const (
	mapTitleColumn  = 0
	mapTargetColumn = 6
)

// TitleMap maps a normalized broadcast title to its canonical archive
// filename, as loaded from a match report spreadsheet.
type TitleMap map[string]string

// LoadTitleMap reads a match report spreadsheet and extracts the title to
// filename mapping from its first sheet. Rows without a proposed filename
// are ignored. A normalized title seen twice with different filenames is
// ambiguous and dropped with a warning.
func LoadTitleMap(path string, logger *slog.Logger) (TitleMap, error) {
	log := logging.NewComponentLogger(logger, "renamer")

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "renamer", "load-map", "open spreadsheet", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "renamer", "load-map", "read rows", err)
	}
	if len(rows) == 0 {
		return nil, services.Wrap(services.ErrValidation, "renamer", "load-map", "spreadsheet is empty", nil)
	}

	titles := make(TitleMap)
	ambiguous := make(map[string]bool)
	for i, row := range rows[1:] {
		if len(row) <= mapTargetColumn {
			continue
		}
		target := row[mapTargetColumn]
		if target == "" {
			continue
		}
		key := textutil.NormalizeTitle(row[mapTitleColumn])
		if key == "" {
			continue
		}
		if prev, ok := titles[key]; ok && prev != target {
			log.Warn("ambiguous title in map, skipping",
				logging.String("title", row[mapTitleColumn]),
				logging.Int("row", i+2))
			ambiguous[key] = true
			continue
		}
		titles[key] = target
	}
	for key := range ambiguous {
		delete(titles, key)
	}
	return titles, nil
}

// RunMap copies every .mp4 in srcDir whose normalized title appears in the
// map into dstDir under the mapped filename. Copy semantics match Run:
// existing targets are skipped and dry-run only reports.
func (r *Renamer) RunMap(titles TitleMap, srcDir, dstDir string) (Summary, error) {
	var summary Summary

	sources, err := listMP4s(srcDir)
	if err != nil {
		return summary, services.Wrap(services.ErrValidation, "renamer", "run-map", "list source files", err)
	}
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return summary, services.Wrap(services.ErrValidation, "renamer", "run-map", "create destination", err)
	}

	for _, src := range sources {
		rawTitle := r.index.Series().RawTitleFromFilename(src)
		key := textutil.NormalizeTitle(rawTitle)
		target, ok := titles[key]
		if !ok {
			r.logger.Warn("title not in map", logging.String("file", filepath.Base(src)), logging.String("title", rawTitle))
			summary.Unmatched++
			continue
		}

		dst := filepath.Join(dstDir, target)
		if _, err := os.Stat(dst); err == nil {
			r.logger.Info("target exists, skipping", logging.String("target", target))
			summary.SkippedExisting++
			continue
		}

		if r.dryRun {
			r.logger.Info("would copy", logging.String("source", filepath.Base(src)), logging.String("target", target))
			summary.Copied++
			continue
		}

		if err := fileutil.CopyFileVerified(src, dst); err != nil {
			if errors.Is(err, fs.ErrExist) {
				r.logger.Info("target exists, skipping", logging.String("target", target))
				summary.SkippedExisting++
				continue
			}
			return summary, services.Wrap(services.ErrExternal, "renamer", "copy", fmt.Sprintf("copy %s", filepath.Base(src)), err)
		}
		r.logger.Info("copied", logging.String("source", filepath.Base(src)), logging.String("target", target))
		summary.Copied++
	}

	return summary, nil
}

package renamer

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bahnarchiv/internal/catalog"
	"bahnarchiv/internal/fileutil"
	"bahnarchiv/internal/logging"
	"bahnarchiv/internal/match"
	"bahnarchiv/internal/naming"
	"bahnarchiv/internal/services"
)

// Summary counts the outcome of one renamer run.
type Summary struct {
	Copied          int
	SkippedLowScore int
	SkippedExisting int
	Unmatched       int
}

// Renamer matches source files against the catalog and copies them to their
// canonical names.
type Renamer struct {
	index     *match.Index
	scheme    *naming.Scheme
	threshold float64
	dryRun    bool
	logger    *slog.Logger
}

// New builds a Renamer. Matches scoring below threshold are skipped rather
// than guessed.
func New(episodes []catalog.Episode, series match.Series, scheme *naming.Scheme, threshold float64, dryRun bool, logger *slog.Logger) *Renamer {
	return &Renamer{
		index:     match.NewIndex(episodes, series),
		scheme:    scheme,
		threshold: threshold,
		dryRun:    dryRun,
		logger:    logging.NewComponentLogger(logger, "renamer"),
	}
}

// Run copies every matching .mp4 from srcDir into dstDir. File-level
// problems (no match, low score, existing target) are counted and logged,
// not returned as errors; only environment failures abort the run.
func (r *Renamer) Run(srcDir, dstDir string) (Summary, error) {
	var summary Summary

	sources, err := listMP4s(srcDir)
	if err != nil {
		return summary, services.Wrap(services.ErrValidation, "renamer", "run", "list source files", err)
	}
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return summary, services.Wrap(services.ErrValidation, "renamer", "run", "create destination", err)
	}

	for _, src := range sources {
		rawTitle := r.index.Series().RawTitleFromFilename(src)
		result := r.index.Find(rawTitle)
		if !result.Matched() {
			r.logger.Warn("no episode match", logging.String("file", filepath.Base(src)), logging.String("title", rawTitle))
			summary.Unmatched++
			continue
		}
		if result.Confidence < r.threshold {
			r.logger.Warn("match below threshold",
				logging.String("file", filepath.Base(src)),
				logging.String("episode", result.Episode.Title),
				logging.Float64(logging.FieldConfidence, result.Confidence))
			summary.SkippedLowScore++
			continue
		}

		name := r.scheme.Build(*result.Episode)
		dst := filepath.Join(dstDir, name)
		if _, err := os.Stat(dst); err == nil {
			r.logger.Info("target exists, skipping", logging.String("target", name))
			summary.SkippedExisting++
			continue
		}

		if r.dryRun {
			r.logger.Info("would copy",
				logging.String("source", filepath.Base(src)),
				logging.String("target", name),
				logging.Float64(logging.FieldConfidence, result.Confidence))
			summary.Copied++
			continue
		}

		if err := fileutil.CopyFileVerified(src, dst); err != nil {
			// The target can appear between the stat above and the copy
			// when another process writes into the same archive.
			if errors.Is(err, fs.ErrExist) {
				r.logger.Info("target exists, skipping", logging.String("target", name))
				summary.SkippedExisting++
				continue
			}
			return summary, services.Wrap(services.ErrExternal, "renamer", "copy", fmt.Sprintf("copy %s", filepath.Base(src)), err)
		}
		r.logger.Info("copied",
			logging.String("source", filepath.Base(src)),
			logging.String("target", name),
			logging.Float64(logging.FieldConfidence, result.Confidence))
		summary.Copied++
	}

	return summary, nil
}

func listMP4s(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".mp4") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

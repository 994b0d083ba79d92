package report

import (
	"encoding/csv"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"bahnarchiv/internal/logging"
	"bahnarchiv/internal/naming"
	"bahnarchiv/internal/services"
)

// ParsedFile is one archive file whose name followed the canonical scheme.
type ParsedFile struct {
	Directory string
	Name      string
	Path      string
	SizeBytes int64
	Code      string
	Date      string
	Abs       int
	Title     string
}

// SkippedFile is a video file whose name did not parse.
type SkippedFile struct {
	Path      string
	SizeBytes int64
}

// DuplicateGroup collects the files sharing one key value.
type DuplicateGroup struct {
	Value string
	Files []ParsedFile
}

// DuplicateReport is the result of scanning one or more archive directories.
// Duplicates are grouped three ways because each identity field can clash
// independently: a re-aired episode shares the code but not the date, a
// miscounted one shares the date but not the absolute number.
type DuplicateReport struct {
	Scanned int
	Parsed  []ParsedFile
	Skipped []SkippedFile
	ByCode  []DuplicateGroup
	ByDate  []DuplicateGroup
	ByAbs   []DuplicateGroup
}

// Duplicates scans dirs for .mp4 files, parses their names, and groups the
// duplicates by episode code, broadcast date, and absolute number.
func Duplicates(dirs []string, recursive bool, scheme *naming.Scheme, logger *slog.Logger) (*DuplicateReport, error) {
	log := logging.NewComponentLogger(logger, "report")
	r := &DuplicateReport{}

	for _, dir := range dirs {
		paths, err := listVideos(dir, recursive)
		if err != nil {
			return nil, services.Wrap(services.ErrValidation, "report", "duplicates", "scan directory", err)
		}
		for _, path := range paths {
			r.Scanned++
			info, err := os.Stat(path)
			if err != nil {
				return nil, services.Wrap(services.ErrValidation, "report", "duplicates", "stat file", err)
			}
			p, ok := scheme.Parse(filepath.Base(path))
			if !ok {
				r.Skipped = append(r.Skipped, SkippedFile{Path: path, SizeBytes: info.Size()})
				continue
			}
			r.Parsed = append(r.Parsed, ParsedFile{
				Directory: filepath.Dir(path),
				Name:      filepath.Base(path),
				Path:      path,
				SizeBytes: info.Size(),
				Code:      p.Code,
				Date:      p.Date,
				Abs:       p.Abs,
				Title:     p.Title,
			})
		}
	}

	sort.Slice(r.Parsed, func(i, j int) bool {
		a, b := r.Parsed[i], r.Parsed[j]
		if a.Code != b.Code {
			return a.Code < b.Code
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Abs != b.Abs {
			return a.Abs < b.Abs
		}
		return a.Path < b.Path
	})
	sort.Slice(r.Skipped, func(i, j int) bool { return r.Skipped[i].Path < r.Skipped[j].Path })

	r.ByCode = groupDuplicates(r.Parsed, func(f ParsedFile) string { return f.Code })
	r.ByDate = groupDuplicates(r.Parsed, func(f ParsedFile) string { return f.Date })
	r.ByAbs = groupDuplicates(r.Parsed, func(f ParsedFile) string { return strconv.Itoa(f.Abs) })

	log.Info("scanned archive",
		logging.Int("scanned", r.Scanned),
		logging.Int("parsed", len(r.Parsed)),
		logging.Int("skipped", len(r.Skipped)))
	return r, nil
}

// WriteCSV exports every parsed file for spreadsheet follow-up.
func (r *DuplicateReport) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return services.Wrap(services.ErrValidation, "report", "duplicates", "create csv", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"directory", "filename", "path", "size_bytes", "episode_code", "broadcast_date", "abs_episode", "title"}); err != nil {
		return err
	}
	for _, p := range r.Parsed {
		record := []string{
			p.Directory, p.Name, p.Path,
			strconv.FormatInt(p.SizeBytes, 10),
			p.Code, p.Date, strconv.Itoa(p.Abs), p.Title,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func groupDuplicates(files []ParsedFile, key func(ParsedFile) string) []DuplicateGroup {
	byKey := make(map[string][]ParsedFile)
	for _, f := range files {
		k := key(f)
		byKey[k] = append(byKey[k], f)
	}

	var groups []DuplicateGroup
	for k, members := range byKey {
		if len(members) < 2 {
			continue
		}
		sort.Slice(members, func(i, j int) bool { return members[i].Path < members[j].Path })
		groups = append(groups, DuplicateGroup{Value: k, Files: members})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Value < groups[j].Value })
	return groups
}

func listVideos(dir string, recursive bool) ([]string, error) {
	var paths []string
	if recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() && strings.EqualFold(filepath.Ext(path), ".mp4") {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return paths, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.Type().IsRegular() && strings.EqualFold(filepath.Ext(entry.Name()), ".mp4") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

package report

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"bahnarchiv/internal/catalog"
	"bahnarchiv/internal/logging"
	"bahnarchiv/internal/naming"
	"bahnarchiv/internal/services"
)

// fallbackAbsPattern recovers the absolute episode token from loosely named
// files: an ISO date, a separator, the token, another separator. Qualifier
// suffixes like 890XL are allowed; the leading digits carry the number.
var fallbackAbsPattern = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b\s*[-–—]\s*(\d+[A-Za-z]{0,8})\s*[-–—]`)

var leadingDigits = regexp.MustCompile(`^\d+`)

// MissingRow describes one broadcast episode with no file on disk. Source
// fields come from the broadcast listing, the rest from the catalog entry
// for that absolute number when one exists.
type MissingRow struct {
	AbsEpisode       int
	SourceTitle      string
	SourceDate       string
	SeasonEpisode    string
	AirDate          string
	Title            string
	ExpectedFilename string
}

// MissingReport is the result of comparing a broadcast listing against the
// files in one directory.
type MissingReport struct {
	Requested int
	OnDisk    int
	Rows      []MissingRow
	Unparsed  []string
}

// MissingCSVPath derives the report path next to the source listing.
func MissingCSVPath(csvPath string) string {
	return withSuffix(csvPath, "_missing.csv")
}

// UnparsedListPath derives the diagnostics path next to the source listing.
func UnparsedListPath(csvPath string) string {
	return withSuffix(csvPath, "_unparsed_filenames.txt")
}

func withSuffix(path, suffix string) string {
	stem := strings.TrimSuffix(path, filepath.Ext(path))
	return stem + suffix
}

// Missing reads a broadcast listing (title, date, episode columns; episode
// is the absolute number) and reports every requested number that no file
// under videoDir carries. Each missing row is joined with the catalog entry
// for that number so the report names the expected canonical filename.
func Missing(csvPath, videoDir string, episodes []catalog.Episode, scheme *naming.Scheme, logger *slog.Logger) (*MissingReport, error) {
	log := logging.NewComponentLogger(logger, "report")

	requested, err := readBroadcastListing(csvPath)
	if err != nil {
		return nil, err
	}

	present, unparsed, err := diskAbsIndex(videoDir, scheme)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "report", "missing", "scan video directory", err)
	}
	byAbs := catalog.ByAbs(episodes)

	numbers := make([]int, 0, len(requested))
	for abs := range requested {
		numbers = append(numbers, abs)
	}
	sort.Ints(numbers)

	r := &MissingReport{Requested: len(numbers), OnDisk: len(present), Unparsed: unparsed}
	for _, abs := range numbers {
		if _, ok := present[abs]; ok {
			continue
		}
		row := MissingRow{
			AbsEpisode:  abs,
			SourceTitle: requested[abs].title,
			SourceDate:  requested[abs].date,
		}
		if ep, ok := byAbs[abs]; ok {
			row.SeasonEpisode = ep.SeasonEpisodeCode
			row.AirDate = ep.AirDateISO
			row.Title = ep.Title
			row.ExpectedFilename = scheme.Build(ep)
		}
		r.Rows = append(r.Rows, row)
	}

	log.Info("missing episodes computed",
		logging.Int("requested", r.Requested),
		logging.Int("on_disk", r.OnDisk),
		logging.Int("missing", len(r.Rows)),
		logging.Int("unparsed_files", len(r.Unparsed)))
	return r, nil
}

// WriteCSV exports the missing rows.
func (r *MissingReport) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return services.Wrap(services.ErrValidation, "report", "missing", "create csv", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"abs_episode", "source_title", "source_date", "season_episode", "air_date", "title", "expected_filename"}); err != nil {
		return err
	}
	for _, row := range r.Rows {
		record := []string{
			strconv.Itoa(row.AbsEpisode),
			row.SourceTitle, row.SourceDate,
			row.SeasonEpisode, row.AirDate, row.Title,
			row.ExpectedFilename,
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

// WriteUnparsed writes the filenames that yielded no absolute number, one
// per line, for manual cleanup.
func (r *MissingReport) WriteUnparsed(path string) error {
	names := append([]string(nil), r.Unparsed...)
	sort.Strings(names)
	return os.WriteFile(path, []byte(strings.Join(names, "\n")+"\n"), 0o644)
}

type broadcastRow struct {
	title string
	date  string
}

// readBroadcastListing loads the listing and keeps the first row seen per
// absolute number. Rows without a numeric episode column are skipped.
func readBroadcastListing(path string) (map[int]broadcastRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "report", "missing", "open listing", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "report", "missing", "parse listing", err)
	}
	if len(records) == 0 {
		return nil, services.Wrap(services.ErrValidation, "report", "missing", "listing has no header row", nil)
	}

	titleIdx, dateIdx, epIdx := -1, -1, -1
	for i, col := range records[0] {
		switch strings.TrimPrefix(col, "\ufeff") {
		case "title":
			titleIdx = i
		case "date":
			dateIdx = i
		case "episode":
			epIdx = i
		}
	}
	if titleIdx < 0 || dateIdx < 0 || epIdx < 0 {
		return nil, services.Wrap(services.ErrValidation, "report", "missing", "missing required columns (title, date, episode)", nil)
	}

	rows := make(map[int]broadcastRow)
	for _, record := range records[1:] {
		if epIdx >= len(record) {
			continue
		}
		abs, err := strconv.Atoi(strings.TrimSpace(record[epIdx]))
		if err != nil {
			continue
		}
		if _, ok := rows[abs]; ok {
			continue
		}
		row := broadcastRow{}
		if titleIdx < len(record) {
			row.title = record[titleIdx]
		}
		if dateIdx < len(record) {
			row.date = record[dateIdx]
		}
		rows[abs] = row
	}
	return rows, nil
}

// diskAbsIndex collects the absolute numbers present under dir. Canonical
// names parse via the scheme; loose names fall back to the date-number
// pattern. Files yielding neither are reported for diagnostics.
func diskAbsIndex(dir string, scheme *naming.Scheme) (map[int]struct{}, []string, error) {
	paths, err := listVideos(dir, false)
	if err != nil {
		return nil, nil, err
	}

	present := make(map[int]struct{})
	var unparsed []string
	for _, path := range paths {
		name := filepath.Base(path)
		abs, ok := absFromFilename(name, scheme)
		if !ok {
			unparsed = append(unparsed, name)
			continue
		}
		present[abs] = struct{}{}
	}
	return present, unparsed, nil
}

func absFromFilename(name string, scheme *naming.Scheme) (int, bool) {
	if p, ok := scheme.Parse(name); ok && p.Abs > 0 {
		return p.Abs, true
	}
	if m := fallbackAbsPattern.FindStringSubmatch(name); m != nil {
		if d := leadingDigits.FindString(m[1]); d != "" {
			if abs, err := strconv.Atoi(d); err == nil {
				return abs, true
			}
		}
	}
	return 0, false
}

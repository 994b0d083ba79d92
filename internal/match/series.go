package match

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Series describes the series whose archive is being organized. It owns the
// prefix-stripping rules: the series name appears inconsistently at the
// start of titles and filenames across sources and carries no discriminating
// information, so it is removed before comparison.
type Series struct {
	name       string
	titleRe    *regexp.Regexp
	filenameRe *regexp.Regexp
}

var (
	nameSplit  = regexp.MustCompile(`[\s\-–—]+`)
	trailingID = regexp.MustCompile(`[- ]\d{5,}$`)
)

// NewSeries compiles the prefix rules for a series name such as
// "Eisenbahn-Romantik". The generated patterns tolerate dash variants and
// flexible separators between the name's words, plus an optional colon or
// dash after the prefix.
func NewSeries(name string) Series {
	tokens := nameSplit.Split(strings.TrimSpace(name), -1)
	quoted := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(tok))
	}
	joined := strings.Join(quoted, `\s*[-–—]?\s*`)

	return Series{
		name:       strings.TrimSpace(name),
		titleRe:    regexp.MustCompile(`(?i)^\s*` + joined + `\s*(?:[:\-–—]\s*)?`),
		filenameRe: regexp.MustCompile(`(?i)^` + strings.Join(quoted, `[- ]?`) + `[- ]*`),
	}
}

// Name returns the series name as configured.
func (s Series) Name() string {
	return s.name
}

// StripPrefix removes a leading series-name prefix from a title, including
// an optional following colon or dash. Titles without the prefix are
// returned trimmed but otherwise unchanged.
func (s Series) StripPrefix(title string) string {
	if title == "" {
		return ""
	}
	return strings.TrimSpace(s.titleRe.ReplaceAllString(title, ""))
}

// RawTitleFromFilename extracts a human-readable title from a downloaded
// video filename: the extension and any leading series prefix are dropped,
// trailing numeric download identifiers (five or more digits) are removed,
// and underscores become spaces.
func (s Series) RawTitleFromFilename(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = s.filenameRe.ReplaceAllString(name, "")
	name = strings.TrimSpace(trailingID.ReplaceAllString(name, ""))
	name = strings.ReplaceAll(name, "_", " ")
	return strings.TrimSpace(name)
}

package naming

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"bahnarchiv/internal/catalog"
	"bahnarchiv/internal/textutil"
)

const (
	placeholderCode  = "S00E00"
	placeholderDate  = "0000-00-00"
	placeholderTitle = "Unknown Title"
)

// Scheme renders and parses canonical filenames for one series prefix.
type Scheme struct {
	prefix string
	nameRe *regexp.Regexp
}

// Parsed holds the fields recovered from a canonical filename.
type Parsed struct {
	Code   string
	Date   string
	AbsRaw string
	Abs    int
	Title  string
}

var absDigits = regexp.MustCompile(`^\d+`)

// NewScheme returns a Scheme for the given series prefix. The prefix is
// matched literally but case-insensitively when parsing.
func NewScheme(prefix string) *Scheme {
	pattern := `(?i)^` + regexp.QuoteMeta(prefix) +
		`\s+(S\d{2,4}E\d{1,3})\s*[-–—]\s*(\d{4}-\d{2}-\d{2})\s*[-–—]\s*(\d+[A-Za-z]{0,8})\s*[-–—]\s*(.+)\.mp4$`
	return &Scheme{prefix: prefix, nameRe: regexp.MustCompile(pattern)}
}

// Prefix returns the series prefix the scheme was built with.
func (s *Scheme) Prefix() string { return s.prefix }

// Build renders the canonical filename for an episode. Unknown fields fall
// back to placeholders so the layout stays fixed.
func (s *Scheme) Build(ep catalog.Episode) string {
	code := strings.TrimSpace(ep.SeasonEpisodeCode)
	if code == "" {
		code = placeholderCode
	}
	date := strings.TrimSpace(ep.AirDateISO)
	if date == "" {
		date = placeholderDate
	}
	abs := strconv.Itoa(ep.AbsEpisode)
	title := strings.TrimSpace(textutil.SanitizeFileName(ep.Title))
	if title == "" {
		title = placeholderTitle
	}
	return fmt.Sprintf("%s %s - %s - %s - %s.mp4", s.prefix, code, date, abs, title)
}

// Parse recovers the canonical fields from a filename. It accepts only names
// following the scheme exactly; loosely named files are rejected so callers
// can report them instead of misfiling them.
func (s *Scheme) Parse(name string) (Parsed, bool) {
	m := s.nameRe.FindStringSubmatch(name)
	if m == nil {
		return Parsed{}, false
	}
	p := Parsed{
		Code:   strings.ToUpper(m[1]),
		Date:   m[2],
		AbsRaw: m[3],
		Title:  strings.TrimSpace(m[4]),
	}
	if d := absDigits.FindString(p.AbsRaw); d != "" {
		p.Abs, _ = strconv.Atoi(d)
	}
	return p, true
}

package epkey

import (
	"fmt"
	"regexp"
	"strings"

	"bahnarchiv/internal/textutil"
)

// Row carries the named fields of one catalog CSV row that contribute to the
// identity key. Callers resolve header aliases (Date vs BroadcastDate)
// before constructing a Row.
type Row struct {
	SeasonEpisode string
	Date          string
	AbsEpisode    string
}

// filenamePattern matches the stable key region near the start of a
// filename: an arbitrary prefix, the season/episode token, an ISO date, the
// absolute episode digits, an optional XL qualifier, and the following
// separator. Dash variants are already unified by normalization at compare
// time, but the raw filename may still carry them, so the separator accepts
// the common Unicode dashes too.
var filenamePattern = regexp.MustCompile(
	`(?i)^\s*.*?` +
		`(S\d{1,4}E\d{1,4})` +
		`\s*[-–—]\s*` +
		`(\d{4}-\d{2}-\d{2})` +
		`\s*[-–—]\s*` +
		`(\d+)` +
		`(?:\s*[- ]?\s*XL)?` +
		`\s*[-–—]\s*`,
)

var leadingDigits = regexp.MustCompile(`\d+`)

// FromRow builds the normalized key for a table row. Missing fields
// contribute empty segments; a trailing qualifier on AbsEpisode (for example
// "1071 XL") is reduced to its leading digit run.
func FromRow(row Row) string {
	se := strings.TrimSpace(row.SeasonEpisode)
	date := strings.TrimSpace(row.Date)
	abs := absDigits(row.AbsEpisode)
	return textutil.NormalizeKey(fmt.Sprintf("%s - %s - %s - ", se, date, abs))
}

// FromFilename extracts the normalized key from a filename. The second
// return value reports whether the filename contained the key pattern; a
// miss is an expected "not parseable" signal, not an error.
func FromFilename(name string) (string, bool) {
	m := filenamePattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	raw := fmt.Sprintf("%s - %s - %s - ", m[1], m[2], m[3])
	return textutil.NormalizeKey(raw), true
}

func absDigits(value string) string {
	return leadingDigits.FindString(strings.TrimSpace(value))
}

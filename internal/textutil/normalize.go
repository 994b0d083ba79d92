package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldForm applies NFKC compatibility normalization and removes invisible
// Unicode format characters (category Cf): zero-width spaces, byte-order
// marks, word joiners. These are invisible yet break substring comparison.
var foldForm = transform.Chain(norm.NFKC, runes.Remove(runes.In(unicode.Cf)))

// punctReplacer unifies dash, apostrophe, and space variants that appear
// interchangeably across TVDB exports, MediathekView titles, and manually
// edited spreadsheets. The soft hyphen entry is listed for completeness;
// it is already removed as a format character.
var punctReplacer = strings.NewReplacer(
	"‐", "-", // hyphen
	"‑", "-", // non-breaking hyphen
	"‒", "-", // figure dash
	"–", "-", // en dash
	"—", "-", // em dash
	"―", "-", // horizontal bar
	"−", "-", // minus sign
	"⁃", "-", // hyphen bullet
	"­", "-", // soft hyphen
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"‛", "'", // single high-reversed-9 quote
	"′", "'", // prime
	"´", "'", // acute accent
	"`", "'", // grave accent
	"ʼ", "'", // modifier letter apostrophe
	"ʹ", "'", // modifier letter prime
	"＇", "'", // fullwidth apostrophe
	" ", " ", // no-break space
	" ", " ", // figure space
	" ", " ", // narrow no-break space
)

var whitespaceRun = regexp.MustCompile(`\s+`)

var caseFolder = cases.Fold()

// NormalizeKey canonicalizes text for exact key comparison. The steps run in
// a fixed order: NFKC, format-character removal, dash/apostrophe/space
// unification, whitespace collapsing, and full case folding. The result is
// idempotent under NormalizeKey. Empty input yields an empty string; the
// function never fails.
func NormalizeKey(s string) string {
	if s == "" {
		return ""
	}
	folded, _, err := transform.String(foldForm, s)
	if err == nil {
		s = folded
	}
	s = punctReplacer.Replace(s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	return caseFolder.String(s)
}

// NormalizeTitle canonicalizes text for fuzzy title matching. It folds ß to
// ss, treats underscores as spaces, lowercases, decomposes (NFKD) and drops
// combining marks, removes everything that is not a letter, digit, or space,
// and collapses whitespace. This is deliberately more destructive than
// NormalizeKey: punctuation carries no signal for title similarity.
func NormalizeTitle(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "ß", "ss")
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ToLower(s)
	s = norm.NFKD.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from decomposition
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	s = whitespaceRun.ReplaceAllString(b.String(), " ")
	return strings.TrimSpace(s)
}

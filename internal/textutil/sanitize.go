package textutil

import "strings"

// fileNameReplacer replaces filesystem-unsafe characters. Path separators
// become dashes so slash-bearing titles stay readable; other characters that
// are illegal on common filesystems are removed.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "",
	"*", "",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName makes a title safe for use as a filename component.
// The result is trimmed of leading/trailing whitespace. Empty input yields
// an empty string.
func SanitizeFileName(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

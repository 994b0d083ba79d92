package filmlist

import (
	"regexp"
	"strconv"
	"strings"
)

// Positional indices in a MediathekView film record.
const (
	idxStation     = 0
	idxTopic       = 1
	idxTitle       = 2
	idxDate        = 3
	idxStartTime   = 4
	idxDuration    = 5
	idxSize        = 6
	idxDescription = 7
	idxURL         = 8

	minRecordFields = 8
)

// Record is one film entry with the positional fields the archive cares
// about named. Date uses DD.MM.YYYY and Duration HH:MM:SS as published.
type Record struct {
	Station     string
	Topic       string
	Title       string
	Date        string
	StartTime   string
	Duration    string
	Size        string
	Description string
	URL         string
}

var episodePattern = regexp.MustCompile(`\bFolge\s*(\d+)\b`)

// EpisodeNumber extracts the explicit episode number from a description,
// matching "Folge 107" or "(Folge 107)".
func (r Record) EpisodeNumber() (int, bool) {
	m := episodePattern.FindStringSubmatch(r.Description)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// fromValues converts a positional record to a Record. Records with fewer
// than eight fields are rejected; the URL field is optional.
func fromValues(values []any) (Record, bool) {
	if len(values) < minRecordFields {
		return Record{}, false
	}
	field := func(i int) string {
		if i >= len(values) {
			return ""
		}
		s, _ := values[i].(string)
		return s
	}
	return Record{
		Station:     field(idxStation),
		Topic:       field(idxTopic),
		Title:       field(idxTitle),
		Date:        field(idxDate),
		StartTime:   field(idxStartTime),
		Duration:    field(idxDuration),
		Size:        field(idxSize),
		Description: field(idxDescription),
		URL:         field(idxURL),
	}, true
}

func (r Record) values() []string {
	return []string{
		r.Station, r.Topic, r.Title, r.Date, r.StartTime,
		r.Duration, r.Size, r.Description, r.URL,
	}
}

// MatchesKeywords reports whether any field of the record contains every
// keyword. Dash variants are unified and matching is case-insensitive, so
// "Eisenbahn-Romantik", "Eisenbahn – Romantik", and "eisenbahn romantik"
// all satisfy the keywords ["eisenbahn", "romantik"].
func (r Record) MatchesKeywords(keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	for _, field := range r.values() {
		if field == "" {
			continue
		}
		t := normField(field)
		all := true
		for _, kw := range keywords {
			if !strings.Contains(t, kw) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

var dashUnifier = strings.NewReplacer("–", "-", "—", "-")

func normField(s string) string {
	return dashUnifier.Replace(strings.ToLower(s))
}

// Keywords lowercases a series name and splits it into the match keywords,
// treating dashes as separators.
func Keywords(seriesName string) []string {
	t := normField(seriesName)
	fields := strings.FieldsFunc(t, func(r rune) bool {
		return r == ' ' || r == '-' || r == '\t'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

package dedupe

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"bahnarchiv/internal/textutil"
)

// Observation is one broadcast of an episode as listed by the mediathek.
// Date uses DD.MM.YYYY and Duration HH:MM:SS, both as published.
type Observation struct {
	Title     string
	Date      string
	StartTime string
	Duration  string
	Episode   int
}

const dateLayout = "02.01.2006"

// DurationSeconds converts an HH:MM:SS duration to seconds. Malformed
// durations count as zero so they sort behind every well-formed one.
func DurationSeconds(s string) int {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0
	}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}

func parseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Select keeps the preferred broadcast for each (episode, normalized title)
// pair: the most recent airing, with longer runtime and later start time as
// tie-breakers. Survivors are returned newest first. The result depends only
// on the set of observations, not on their order.
func Select(observations []Observation) []Observation {
	type ranked struct {
		obs       Observation
		normTitle string
		date      time.Time
		seconds   int
	}
	rows := make([]ranked, 0, len(observations))
	for _, o := range observations {
		rows = append(rows, ranked{
			obs:       o,
			normTitle: textutil.NormalizeTitle(o.Title),
			date:      parseDate(o.Date),
			seconds:   DurationSeconds(o.Duration),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.obs.Episode != b.obs.Episode {
			return a.obs.Episode < b.obs.Episode
		}
		if a.normTitle != b.normTitle {
			return a.normTitle < b.normTitle
		}
		if !a.date.Equal(b.date) {
			return a.date.After(b.date)
		}
		if a.seconds != b.seconds {
			return a.seconds > b.seconds
		}
		return a.obs.StartTime > b.obs.StartTime
	})

	type groupKey struct {
		episode int
		title   string
	}
	seen := make(map[groupKey]struct{})
	kept := make([]ranked, 0, len(rows))
	for _, r := range rows {
		key := groupKey{episode: r.obs.Episode, title: r.normTitle}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, r)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if !a.date.Equal(b.date) {
			return a.date.After(b.date)
		}
		if a.obs.Episode != b.obs.Episode {
			return a.obs.Episode < b.obs.Episode
		}
		return a.normTitle < b.normTitle
	})

	out := make([]Observation, len(kept))
	for i, r := range kept {
		out[i] = r.obs
	}
	return out
}

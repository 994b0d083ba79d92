package filmlist

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"bahnarchiv/internal/dedupe"
)

// Observations converts records to broadcast observations. Only records
// carrying an explicit episode number are kept.
func Observations(records []Record) []dedupe.Observation {
	obs := make([]dedupe.Observation, 0, len(records))
	for _, r := range records {
		episode, ok := r.EpisodeNumber()
		if !ok {
			continue
		}
		obs = append(obs, dedupe.Observation{
			Title:     r.Title,
			Date:      r.Date,
			StartTime: r.StartTime,
			Duration:  r.Duration,
			Episode:   episode,
		})
	}
	return obs
}

// FilterMinDuration drops observations shorter than the given number of
// minutes. Zero keeps everything.
func FilterMinDuration(obs []dedupe.Observation, minMinutes int) []dedupe.Observation {
	if minMinutes <= 0 {
		return obs
	}
	kept := make([]dedupe.Observation, 0, len(obs))
	for _, o := range obs {
		if dedupe.DurationSeconds(o.Duration) >= minMinutes*60 {
			kept = append(kept, o)
		}
	}
	return kept
}

// ObservationHeader is the column layout of the converted broadcast CSV.
var ObservationHeader = []string{"title", "date", "start_time", "duration", "episode"}

// WriteObservationsCSV writes observations in the converted broadcast
// layout.
func WriteObservationsCSV(w io.Writer, obs []dedupe.Observation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ObservationHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, o := range obs {
		row := []string{o.Title, o.Date, o.StartTime, o.Duration, strconv.Itoa(o.Episode)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

package pipeline

import (
	"log/slog"
	"sort"
	"time"

	"bahnarchiv/internal/catalog"
	"bahnarchiv/internal/dedupe"
	"bahnarchiv/internal/logging"
	"bahnarchiv/internal/match"
	"bahnarchiv/internal/naming"
)

// Row is one matched broadcast in the review sheet.
type Row struct {
	Title       string
	Date        string
	StartTime   string
	Duration    string
	Episode     int
	Confidence  float64
	NewFilename string
}

// Stage matches broadcasts against a prepared catalog index.
type Stage struct {
	index     *match.Index
	scheme    *naming.Scheme
	threshold float64
	logger    *slog.Logger
}

// New builds a Stage. The threshold is the minimum confidence for proposing
// a filename; matches below it stay in the output without one.
func New(episodes []catalog.Episode, series match.Series, scheme *naming.Scheme, threshold float64, logger *slog.Logger) *Stage {
	return &Stage{
		index:     match.NewIndex(episodes, series),
		scheme:    scheme,
		threshold: threshold,
		logger:    logging.NewComponentLogger(logger, "pipeline"),
	}
}

// Run matches each broadcast and returns the rows sorted by broadcast date,
// newest first.
func (s *Stage) Run(observations []dedupe.Observation) []Row {
	rows := make([]Row, 0, len(observations))
	proposed := 0
	for _, o := range observations {
		row := Row{
			Title:     o.Title,
			Date:      o.Date,
			StartTime: o.StartTime,
			Duration:  o.Duration,
			Episode:   o.Episode,
		}
		result := s.index.Find(o.Title)
		row.Confidence = result.Confidence
		if result.Matched() && result.Confidence >= s.threshold {
			row.NewFilename = s.scheme.Build(*result.Episode)
			proposed++
		} else if result.Matched() {
			s.logger.Debug("match below threshold",
				logging.String("title", o.Title),
				logging.Float64(logging.FieldConfidence, result.Confidence))
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return parseBroadcastDate(rows[i].Date).After(parseBroadcastDate(rows[j].Date))
	})

	s.logger.Info("matched broadcasts",
		logging.Int("rows", len(rows)),
		logging.Int("proposed", proposed))
	return rows
}

func parseBroadcastDate(s string) time.Time {
	t, err := time.Parse("02.01.2006", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

package match

import (
	"strings"

	"bahnarchiv/internal/catalog"
	"bahnarchiv/internal/textutil"
)

// Result is the matcher's verdict for one query title. Episode is nil when
// nothing matched, in which case Confidence is 0. A Confidence of exactly
// 1.0 is reserved for whole-token containment hits.
type Result struct {
	Episode    *catalog.Episode
	Confidence float64
}

// Matched reports whether a candidate episode was found at all, regardless
// of confidence.
func (r Result) Matched() bool {
	return r.Episode != nil
}

type candidate struct {
	episode  catalog.Episode
	noPrefix string
}

// Index holds a catalog prepared for matching: every episode title is
// normalized and prefix-stripped once at construction. The catalog order is
// preserved; containment ties resolve to the first entry.
type Index struct {
	series     Series
	candidates []candidate
}

// NewIndex prepares episodes for repeated matching against the given series.
func NewIndex(episodes []catalog.Episode, series Series) *Index {
	candidates := make([]candidate, 0, len(episodes))
	for _, ep := range episodes {
		candidates = append(candidates, candidate{
			episode:  ep,
			noPrefix: textutil.NormalizeTitle(series.StripPrefix(ep.Title)),
		})
	}
	return &Index{series: series, candidates: candidates}
}

// Series returns the series the index was built for.
func (ix *Index) Series() Series {
	return ix.series
}

// Len returns the number of catalog entries in the index.
func (ix *Index) Len() int {
	return len(ix.candidates)
}

// Find locates the best catalog episode for a raw title.
//
// The query is normalized and prefix-stripped; an empty result fails fast
// with no match. Whole-token containment in any candidate short-circuits at
// confidence 1.0 in catalog order. Otherwise the best Ratcliff/Obershelp
// ratio wins, with first-seen candidates kept on ties since later ones only
// replace on strict improvement.
func (ix *Index) Find(title string) Result {
	query := textutil.NormalizeTitle(ix.series.StripPrefix(title))
	if query == "" {
		return Result{}
	}

	var best Result
	for i := range ix.candidates {
		cand := &ix.candidates[i]
		if cand.noPrefix == "" {
			continue
		}
		if containsWholeQuery(query, cand.noPrefix) {
			return Result{Episode: &cand.episode, Confidence: 1.0}
		}
		score := textutil.SequenceRatio(query, cand.noPrefix)
		if score > best.Confidence {
			best = Result{Episode: &cand.episode, Confidence: score}
		}
	}
	return best
}

// containsWholeQuery reports whether query occurs in candidate as a
// contiguous run of whole tokens. Space padding on both strings makes the
// boundaries explicit: "alpenbahn" is found in "die alpenbahn" but not
// inside "alpenbahnhof".
func containsWholeQuery(query, candidate string) bool {
	if query == "" || candidate == "" {
		return false
	}
	return strings.Contains(" "+candidate+" ", " "+query+" ")
}

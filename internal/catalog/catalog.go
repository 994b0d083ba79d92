package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Episode is the authoritative record for one episode of the series.
type Episode struct {
	SeasonEpisodeCode string `json:"season_episode_code"`
	SeasonRaw         int    `json:"season_raw,omitempty"`
	EpInSeason        int    `json:"ep_in_season,omitempty"`
	Title             string `json:"title"`
	AirDateISO        string `json:"air_date_iso"`
	AbsEpisode        int    `json:"abs_episode,omitempty"`
	TargetFilename    string `json:"target_filename,omitempty"`
}

// Load reads an episode list from a JSON file. The file must contain a JSON
// array of episode objects.
func Load(path string) ([]Episode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var episodes []Episode
	if err := json.Unmarshal(data, &episodes); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return episodes, nil
}

// Save writes an episode list as an indented JSON array.
func Save(path string, episodes []Episode) error {
	data, err := json.MarshalIndent(episodes, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create catalog directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

// Merge concatenates two episode lists in order. No deduplication or
// re-sorting is performed; absolute numbering is the caller's concern.
func Merge(a, b []Episode) []Episode {
	merged := make([]Episode, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return merged
}

// ByAbs indexes episodes by absolute episode number. Episodes without a
// number are skipped; the first occurrence of a number wins.
func ByAbs(episodes []Episode) map[int]Episode {
	idx := make(map[int]Episode, len(episodes))
	for _, ep := range episodes {
		if ep.AbsEpisode <= 0 {
			continue
		}
		if _, ok := idx[ep.AbsEpisode]; !ok {
			idx[ep.AbsEpisode] = ep
		}
	}
	return idx
}

// SortListing orders episodes the way the source listing does: by raw season,
// then by episode within the season. Absolute numbering follows this order.
func SortListing(episodes []Episode) {
	sort.SliceStable(episodes, func(i, j int) bool {
		if episodes[i].SeasonRaw != episodes[j].SeasonRaw {
			return episodes[i].SeasonRaw < episodes[j].SeasonRaw
		}
		return episodes[i].EpInSeason < episodes[j].EpInSeason
	})
}

// AssignAbsolute numbers episodes 1..N in slice order.
func AssignAbsolute(episodes []Episode) {
	for i := range episodes {
		episodes[i].AbsEpisode = i + 1
	}
}

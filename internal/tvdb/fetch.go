package tvdb

import (
	"context"

	"bahnarchiv/internal/catalog"
	"bahnarchiv/internal/logging"
	"bahnarchiv/internal/naming"
)

// FetchListing scrapes the "all seasons" page, assigns absolute numbers in
// (season, episode) order, and fills target filenames using the scheme.
func (c *Client) FetchListing(ctx context.Context, scheme *naming.Scheme) ([]catalog.Episode, error) {
	body, err := c.get(ctx, c.allSeasonsURL())
	if err != nil {
		return nil, err
	}
	defer body.Close()

	episodes, err := parseListing(body, c.episodeHrefMarker())
	if err != nil {
		return nil, err
	}
	finalize(episodes, scheme)
	c.logger.Info("fetched episode listing", logging.Int("episodes", len(episodes)))
	return episodes, nil
}

// FetchSpecials scrapes the season-0 page. Absolute numbers restart at 1
// within the specials list, matching the standalone specials catalog.
func (c *Client) FetchSpecials(ctx context.Context, scheme *naming.Scheme) ([]catalog.Episode, error) {
	body, err := c.get(ctx, c.seasonURL(0))
	if err != nil {
		return nil, err
	}
	defer body.Close()

	episodes, err := parseSpecials(body, c.episodeHrefMarker())
	if err != nil {
		return nil, err
	}
	finalize(episodes, scheme)
	c.logger.Info("fetched specials listing", logging.Int("episodes", len(episodes)))
	return episodes, nil
}

func finalize(episodes []catalog.Episode, scheme *naming.Scheme) {
	catalog.SortListing(episodes)
	catalog.AssignAbsolute(episodes)
	for i := range episodes {
		episodes[i].TargetFilename = scheme.Build(episodes[i])
	}
}

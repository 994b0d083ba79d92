package tvdb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"bahnarchiv/internal/config"
	"bahnarchiv/internal/logging"
	"bahnarchiv/internal/services"
)

// Client fetches series listing pages with request pacing and a stable
// User-Agent. TheTVDB serves these pages through a CDN; the limiter keeps
// repeated catalog refreshes polite.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	slug       string
	userAgent  string
	logger     *slog.Logger
}

// NewClient builds a Client from configuration. A nil logger disables
// logging.
func NewClient(cfg config.TVDB, logger *slog.Logger) *Client {
	interval := time.Minute / time.Duration(cfg.RequestsPerMinute)
	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(cfg.RequestTimeout) * time.Second},
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
		baseURL:    cfg.BaseURL,
		slug:       cfg.SeriesSlug,
		userAgent:  cfg.UserAgent,
		logger:     logging.NewComponentLogger(logger, "tvdb"),
	}
}

func (c *Client) allSeasonsURL() string {
	return fmt.Sprintf("%s/series/%s/allseasons/official", c.baseURL, c.slug)
}

func (c *Client) seasonURL(season int) string {
	return fmt.Sprintf("%s/series/%s/seasons/official/%d", c.baseURL, c.slug, season)
}

func (c *Client) episodeHrefMarker() string {
	return fmt.Sprintf("/series/%s/episodes/", c.slug)
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, services.Wrap(services.ErrTimeout, "tvdb", "get", "rate limit wait", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "tvdb", "get", "build request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("fetching listing page", logging.String("url", url))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, services.Wrap(services.ErrExternal, "tvdb", "get", "fetch listing page", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, services.Wrap(services.ErrExternal, "tvdb", "get",
			fmt.Sprintf("unexpected status %s for %s", resp.Status, url), nil)
	}
	return resp.Body, nil
}

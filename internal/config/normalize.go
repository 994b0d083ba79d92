package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSeries()
	c.normalizeTVDB()
	c.normalizeFilmlist()
	c.normalizeMatching()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.ArchiveDir, err = expandPath(c.Paths.ArchiveDir); err != nil {
		return fmt.Errorf("paths.archive_dir: %w", err)
	}
	if c.Paths.DownloadDir, err = expandPath(c.Paths.DownloadDir); err != nil {
		return fmt.Errorf("paths.download_dir: %w", err)
	}
	if c.Paths.CatalogPath, err = expandPath(c.Paths.CatalogPath); err != nil {
		return fmt.Errorf("paths.catalog_path: %w", err)
	}
	if c.Paths.FilmlistPath, err = expandPath(c.Paths.FilmlistPath); err != nil {
		return fmt.Errorf("paths.filmlist_path: %w", err)
	}
	if c.Paths.ReportDir, err = expandPath(c.Paths.ReportDir); err != nil {
		return fmt.Errorf("paths.report_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSeries() {
	c.Series.Name = strings.TrimSpace(c.Series.Name)
	if c.Series.Name == "" {
		c.Series.Name = defaultSeriesName
	}
	c.Series.Prefix = strings.TrimSpace(c.Series.Prefix)
	if c.Series.Prefix == "" {
		c.Series.Prefix = c.Series.Name
	}
}

func (c *Config) normalizeTVDB() {
	c.TVDB.BaseURL = strings.TrimRight(strings.TrimSpace(c.TVDB.BaseURL), "/")
	if c.TVDB.BaseURL == "" {
		c.TVDB.BaseURL = defaultTVDBBaseURL
	}
	c.TVDB.SeriesSlug = strings.TrimSpace(c.TVDB.SeriesSlug)
	if c.TVDB.SeriesSlug == "" {
		c.TVDB.SeriesSlug = defaultTVDBSeriesSlug
	}
	c.TVDB.UserAgent = strings.TrimSpace(c.TVDB.UserAgent)
	if c.TVDB.UserAgent == "" {
		c.TVDB.UserAgent = defaultTVDBUserAgent
	}
	if c.TVDB.RequestsPerMinute <= 0 {
		c.TVDB.RequestsPerMinute = defaultTVDBRequestsPerMin
	}
	if c.TVDB.RequestTimeout <= 0 {
		c.TVDB.RequestTimeout = defaultTVDBRequestTimeout
	}
}

func (c *Config) normalizeFilmlist() {
	c.Filmlist.URL = strings.TrimSpace(c.Filmlist.URL)
	if c.Filmlist.URL == "" {
		c.Filmlist.URL = defaultFilmlistURL
	}
	if c.Filmlist.RequestTimeout <= 0 {
		c.Filmlist.RequestTimeout = defaultFilmlistTimeout
	}
}

func (c *Config) normalizeMatching() {
	// Zero is a valid threshold (accept every match), so only negative
	// values fall back to the default.
	if c.Matching.ConfidenceThreshold < 0 {
		c.Matching.ConfidenceThreshold = defaultConfidenceThreshold
	}
	if c.Matching.MinDurationMinutes < 0 {
		c.Matching.MinDurationMinutes = 0
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

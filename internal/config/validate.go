package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSeries(); err != nil {
		return err
	}
	if err := c.validateTVDB(); err != nil {
		return err
	}
	if err := c.validateFilmlist(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.ArchiveDir) == "" {
		return errors.New("paths.archive_dir must be set")
	}
	if strings.TrimSpace(c.Paths.CatalogPath) == "" {
		return errors.New("paths.catalog_path must be set")
	}
	return nil
}

func (c *Config) validateSeries() error {
	if c.Series.Name == "" {
		return errors.New("series.name must be set")
	}
	if c.Series.Prefix == "" {
		return errors.New("series.prefix must be set")
	}
	return nil
}

func (c *Config) validateTVDB() error {
	if _, err := url.ParseRequestURI(c.TVDB.BaseURL); err != nil {
		return fmt.Errorf("tvdb.base_url is not a valid URL: %w", err)
	}
	if c.TVDB.SeriesSlug == "" {
		return errors.New("tvdb.series_slug must be set")
	}
	return ensurePositiveMap(map[string]int{
		"tvdb.requests_per_minute": c.TVDB.RequestsPerMinute,
		"tvdb.request_timeout":     c.TVDB.RequestTimeout,
	})
}

func (c *Config) validateFilmlist() error {
	if _, err := url.ParseRequestURI(c.Filmlist.URL); err != nil {
		return fmt.Errorf("filmlist.url is not a valid URL: %w", err)
	}
	return ensurePositiveMap(map[string]int{
		"filmlist.request_timeout": c.Filmlist.RequestTimeout,
	})
}

func (c *Config) validateMatching() error {
	if c.Matching.ConfidenceThreshold < 0 || c.Matching.ConfidenceThreshold > 1 {
		return errors.New("matching.confidence_threshold must be between 0 and 1")
	}
	if c.Matching.MinDurationMinutes < 0 {
		return errors.New("matching.min_duration_minutes must be >= 0")
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}

// Package testsupport provides shared helpers for package tests: temp-dir
// configs and fixture files.
package testsupport

import (
	"path/filepath"
	"testing"

	"bahnarchiv/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.ArchiveDir = filepath.Join(base, "archive")
	cfgVal.Paths.DownloadDir = filepath.Join(base, "downloads")
	cfgVal.Paths.CatalogPath = filepath.Join(base, "catalog.json")
	cfgVal.Paths.FilmlistPath = filepath.Join(base, "filmliste.json")
	cfgVal.Paths.ReportDir = filepath.Join(base, "reports")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSeriesPrefix overrides the canonical filename prefix on the test config.
func WithSeriesPrefix(prefix string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Series.Prefix = prefix
	}
}

// WithConfidenceThreshold overrides the match acceptance threshold.
func WithConfidenceThreshold(threshold float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Matching.ConfidenceThreshold = threshold
	}
}

// WithJSONLogFile routes structured JSON logs to the given file so tests can
// inspect log records.
func WithJSONLogFile(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Format = "json"
		b.cfg.Logging.OutputPaths = []string{path}
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"bahnarchiv/internal/config"
)

func TestLoadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantArchive := filepath.Join(tempHome, "videos", "eisenbahn-romantik")
	if cfg.Paths.ArchiveDir != wantArchive {
		t.Fatalf("unexpected archive dir: got %q want %q", cfg.Paths.ArchiveDir, wantArchive)
	}
	if cfg.Paths.CatalogPath != filepath.Join(tempHome, ".local", "share", "bahnarchiv", "catalog.json") {
		t.Fatalf("unexpected catalog path: %q", cfg.Paths.CatalogPath)
	}
	if cfg.Series.Name != "Eisenbahn-Romantik" {
		t.Fatalf("unexpected series name: %q", cfg.Series.Name)
	}
	if cfg.Series.Prefix != cfg.Series.Name {
		t.Fatalf("expected prefix to default to series name, got %q", cfg.Series.Prefix)
	}
	if cfg.TVDB.BaseURL != config.Default().TVDB.BaseURL {
		t.Fatalf("unexpected tvdb base url: %q", cfg.TVDB.BaseURL)
	}
	if cfg.Matching.ConfidenceThreshold != 0.50 {
		t.Fatalf("unexpected confidence threshold: %v", cfg.Matching.ConfidenceThreshold)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DownloadDir, cfg.Paths.ReportDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "bahnarchiv.toml")

	type payload struct {
		Series struct {
			Name   string `toml:"name"`
			Prefix string `toml:"prefix"`
		} `toml:"series"`
		Matching struct {
			ConfidenceThreshold float64 `toml:"confidence_threshold"`
			MinDurationMinutes  int     `toml:"min_duration_minutes"`
		} `toml:"matching"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Series.Name = "Eisenbahn-Romantik"
	custom.Series.Prefix = "ER"
	custom.Matching.ConfidenceThreshold = 0.72
	custom.Matching.MinDurationMinutes = 30
	custom.Logging.Format = "JSON"

	encoded, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, encoded, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Series.Prefix != "ER" {
		t.Fatalf("unexpected prefix: %q", cfg.Series.Prefix)
	}
	if cfg.Matching.ConfidenceThreshold != 0.72 {
		t.Fatalf("unexpected threshold: %v", cfg.Matching.ConfidenceThreshold)
	}
	if cfg.Matching.MinDurationMinutes != 30 {
		t.Fatalf("unexpected min duration: %d", cfg.Matching.MinDurationMinutes)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected logging format normalized to json, got %q", cfg.Logging.Format)
	}
	// Values the file omits keep their defaults.
	if cfg.Filmlist.URL != config.Default().Filmlist.URL {
		t.Fatalf("unexpected filmlist url: %q", cfg.Filmlist.URL)
	}
}

func TestLoadThresholdZeroAndNegative(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  float64
	}{
		// Zero is a deliberate "accept everything" setting.
		{"explicit zero", "0.0", 0.0},
		{"negative falls back to default", "-1.0", config.Default().Matching.ConfidenceThreshold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bahnarchiv.toml")
			body := "[matching]\nconfidence_threshold = " + tt.value + "\n"
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			cfg, _, _, err := config.Load(path)
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if cfg.Matching.ConfidenceThreshold != tt.want {
				t.Fatalf("threshold = %v, want %v", cfg.Matching.ConfidenceThreshold, tt.want)
			}
		})
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "threshold above one",
			body: "[matching]\nconfidence_threshold = 1.5\n",
			want: "confidence_threshold",
		},
		{
			name: "bad tvdb url",
			body: "[tvdb]\nbase_url = \"not a url\"\n",
			want: "tvdb.base_url",
		},
		{
			name: "bad filmlist url",
			body: "[filmlist]\nurl = \"::\"\n",
			want: "filmlist.url",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bahnarchiv.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected Load to fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[matching]") {
		t.Fatal("sample config missing [matching] section")
	}
}

func TestExpandPathTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	got, err := config.ExpandPath("~/archive")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if got != filepath.Join(tempHome, "archive") {
		t.Fatalf("ExpandPath = %q", got)
	}
}

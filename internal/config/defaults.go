package config

const (
	defaultArchiveDir          = "~/videos/eisenbahn-romantik"
	defaultDownloadDir         = "~/videos/eisenbahn-romantik/downloads"
	defaultCatalogPath         = "~/.local/share/bahnarchiv/catalog.json"
	defaultFilmlistPath        = "~/.local/share/bahnarchiv/filmliste.json"
	defaultReportDir           = "~/.local/share/bahnarchiv/reports"
	defaultSeriesName          = "Eisenbahn-Romantik"
	defaultSeriesPrefix        = "Eisenbahn-Romantik"
	defaultTVDBBaseURL         = "https://www.thetvdb.com"
	defaultTVDBSeriesSlug      = "eisenbahn-romantik"
	defaultTVDBUserAgent       = "Mozilla/5.0 (X11; Linux x86_64) bahnarchiv/1.0"
	defaultTVDBRequestsPerMin  = 30
	defaultTVDBRequestTimeout  = 30
	defaultFilmlistURL         = "https://liste.mediathekview.de/Filmliste-akt.xz"
	defaultFilmlistTimeout     = 600
	defaultConfidenceThreshold = 0.50
	defaultMinDurationMinutes  = 20
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ArchiveDir:   defaultArchiveDir,
			DownloadDir:  defaultDownloadDir,
			CatalogPath:  defaultCatalogPath,
			FilmlistPath: defaultFilmlistPath,
			ReportDir:    defaultReportDir,
		},
		Series: Series{
			Name:   defaultSeriesName,
			Prefix: defaultSeriesPrefix,
		},
		TVDB: TVDB{
			BaseURL:           defaultTVDBBaseURL,
			SeriesSlug:        defaultTVDBSeriesSlug,
			UserAgent:         defaultTVDBUserAgent,
			RequestsPerMinute: defaultTVDBRequestsPerMin,
			RequestTimeout:    defaultTVDBRequestTimeout,
		},
		Filmlist: Filmlist{
			URL:            defaultFilmlistURL,
			RequestTimeout: defaultFilmlistTimeout,
		},
		Matching: Matching{
			ConfidenceThreshold: defaultConfidenceThreshold,
			MinDurationMinutes:  defaultMinDurationMinutes,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"bahnarchiv/internal/catalog"
	"bahnarchiv/internal/config"
	"bahnarchiv/internal/logging"
	"bahnarchiv/internal/match"
	"bahnarchiv/internal/naming"
	"bahnarchiv/internal/services"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error

	runOnce sync.Once
	runCtx  context.Context
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) flagPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.flagPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logging.WithContext(c.runContext(), logger)
	})
	return c.logger, c.loggerErr
}

// runContext returns the base context for this command invocation, tagged
// with the run ID. The context is created once so the logger and every
// blocking operation of the same run share one ID.
func (c *commandContext) runContext() context.Context {
	c.runOnce.Do(func() {
		c.runCtx = services.WithRunID(context.Background(), services.NewRunID())
	})
	return c.runCtx
}

func (c *commandContext) series(cfg *config.Config) match.Series {
	return match.NewSeries(cfg.Series.Name)
}

func (c *commandContext) scheme(cfg *config.Config) *naming.Scheme {
	return naming.NewScheme(cfg.Series.Prefix)
}

func (c *commandContext) loadCatalog(cfg *config.Config, override string) ([]catalog.Episode, error) {
	path := strings.TrimSpace(override)
	if path == "" {
		path = cfg.Paths.CatalogPath
	}
	return catalog.Load(path)
}

// Package logging assembles structured slog loggers and formatting helpers
// used across the tool.
//
// It owns the configurable console/JSON handlers, centralizes level and
// output plumbing, and exposes attribute aliases so command code emits data
// with a consistent shape. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup.
package logging

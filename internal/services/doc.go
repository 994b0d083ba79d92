// Package services defines shared utilities consumed by the command
// implementations and external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp per-invocation run identifiers for logging
//     and tracing.
//   - Structured error markers plus the Wrap helper that keep failure
//     classification (validation vs not-found vs external) consistent.
//
// Use these helpers when wiring new command logic so operational behaviour
// (error handling, observability) stays uniform across the tool.
package services

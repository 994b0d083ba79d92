// Package config loads, normalizes, and validates the TOML configuration
// file. Loading always starts from Default() so a partial file only has to
// name the values it changes.
package config

// Package main hosts the bahnarchiv CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into catalog
// fetching, broadcast list processing, episode matching, archive renaming,
// and reporting operations. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main

// Package catalog models the authoritative episode listing scraped from
// TheTVDB and provides flat-file persistence for it.
//
// An Episode carries the season/episode code, ISO air date, absolute episode
// number, and title exactly as sourced. Episodes are created once per scrape
// or import and treated as immutable afterwards; matching-oriented derived
// forms are computed by the match package, not stored here.
package catalog

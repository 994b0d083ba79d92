// Package filmlist downloads and filters the MediathekView film list.
//
// The published Filmliste document is not strict JSON: the top-level object
// repeats the "X" key once per film record. The extractor therefore walks the
// document with a token decoder instead of unmarshalling it whole, keeping
// memory bounded while only materializing records that mention the configured
// series.
package filmlist

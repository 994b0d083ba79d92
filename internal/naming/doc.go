// Package naming renders and parses the canonical archive filename scheme:
//
//	<SeriesPrefix> <SxxxxEyy> - <yyyy-mm-dd> - <abs> - <title>.mp4
//
// Missing fields render as stable placeholders rather than being omitted, so
// separator positions are always predictable and the key extractor can parse
// every generated name.
package naming

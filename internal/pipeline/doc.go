// Package pipeline matches mediathek broadcasts against the episode catalog
// and renders the result as review sheets (CSV and XLSX). Rows below the
// confidence threshold keep their score but get no proposed filename, so the
// sheet doubles as a worklist for manual fixes.
package pipeline

// Package presence reconciles catalog listings against the files actually on
// disk. It annotates episode CSVs with a video-present column, checks rows
// against archive filenames by canonical prefix, and marks match report
// spreadsheets with whether each proposed file already exists.
package presence

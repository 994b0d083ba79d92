// Package report derives health reports over the archive: duplicate files
// sharing an episode identity, and broadcast episodes with no file on disk.
package report

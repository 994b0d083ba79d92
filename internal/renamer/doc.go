// Package renamer copies downloaded videos into the archive under their
// canonical filenames. Existing targets are never overwritten; a dry-run
// mode reports what would be copied without touching anything.
package renamer

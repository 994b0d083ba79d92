package epkey

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Set is a collection of normalized presence keys.
type Set map[string]struct{}

// Contains reports whether the key is present.
func (s Set) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// IndexDir scans a directory and collects the keys of every regular file
// whose name matches the filename pattern. Non-matching files are silently
// excluded; callers that care report them separately via Unparsed.
func IndexDir(dir string, recursive bool) (Set, error) {
	keys := make(Set)
	err := walkFiles(dir, recursive, func(name string) {
		if key, ok := FromFilename(name); ok {
			keys[key] = struct{}{}
		}
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Unparsed returns the names of regular files in dir that do not yield a
// key, for diagnostic reporting.
func Unparsed(dir string, recursive bool) ([]string, error) {
	var names []string
	err := walkFiles(dir, recursive, func(name string) {
		if _, ok := FromFilename(name); !ok {
			names = append(names, name)
		}
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func walkFiles(dir string, recursive bool, visit func(name string)) error {
	if recursive {
		return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				visit(d.Name())
			}
			return nil
		})
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			visit(entry.Name())
		}
	}
	return nil
}

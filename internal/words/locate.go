// internal/words/locate.go
//
// Finds the word list on disk.
//
// Responsibilities:
//   - Try the configured path relative to the working directory.
//   - Otherwise walk up to the directory holding a marker file (go.mod by
//     default) and resolve the path from there.

package words

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Locate when no candidate file exists.
var ErrNotFound = errors.New("words: word list not found")

// Locate resolves the word list path.
//
// rel is tried relative to start first. If it is missing, the parent
// directories of start are walked looking for marker (a project file such
// as go.mod); the first directory holding marker is used as the base for rel.
// This lets `go run` from a sub-directory find the repository's word list.
func Locate(start, rel, marker string) (string, error) {
	if filepath.IsAbs(rel) {
		if fileExists(rel) {
			return rel, nil
		}
		return "", ErrNotFound
	}
	if p := filepath.Join(start, rel); fileExists(p) {
		return p, nil
	}
	if marker == "" {
		return "", ErrNotFound
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if fileExists(filepath.Join(dir, marker)) {
			if p := filepath.Join(dir, rel); fileExists(p) {
				return p, nil
			}
			return "", ErrNotFound
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

func fileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}

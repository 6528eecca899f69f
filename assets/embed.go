// Package assets holds files embedded into the game binary.
package assets

import (
	"embed"
)

//go:embed words.txt
var FS embed.FS

// WordList returns the embedded default word list, one word per line.
func WordList() (string, error) {
	b, err := FS.ReadFile("words.txt")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

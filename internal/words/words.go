// internal/words/words.go
//
// Provides the word list (Dictionary) used by the game engine.
//
// Responsibilities:
//   - Parse a word list from a raw character stream or from one-word-per-line text.
//   - Maintain an ordered list plus a set for quick membership lookups.
//   - Supply PickRandom for fresh rounds and Pick/Len for deterministic pickers.
//
// Formats:
//   - FormatStream: every lowercase letter a–z is kept, everything else is
//     dropped, and the remaining letters are cut into consecutive 5-letter words.
//     Newlines are not separators. A trailing partial chunk is discarded.
//   - FormatLines: one word per line, trimmed and lowercased; lines that are
//     not exactly 5 letters a–z are skipped.
//
// A Dictionary is immutable once built and is passed explicitly to whoever
// needs it; there is no package-level word list.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
)

// WordLength is the number of letters in every word.
const WordLength = 5

// ErrEmptyDictionary is returned when a word is requested from an empty list.
var ErrEmptyDictionary = errors.New("words: dictionary is empty")

// Format selects how raw word-list text is split into words.
type Format string

const (
	FormatStream Format = "stream"
	FormatLines  Format = "lines"
)

// ParseFormat maps a config value to a Format. Unknown values fall back to FormatStream.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatLines)) {
		return FormatLines
	}
	return FormatStream
}

// Dictionary is an ordered, immutable set of 5-letter lowercase words.
type Dictionary struct {
	words []string            // insertion order, duplicates removed
	set   map[string]struct{} // membership
}

// New builds a Dictionary from list. Entries that are not 5 letters a–z are dropped.
func New(list []string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(list))}
	for _, w := range list {
		if len(w) != WordLength || !isAlpha(w) {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.words = append(d.words, w)
	}
	return d
}

// Parse reads r to the end and splits it into words according to format.
func Parse(r io.Reader, format Format) (*Dictionary, error) {
	if format == FormatLines {
		list, err := readLines(r)
		if err != nil {
			return nil, err
		}
		return New(list), nil
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(chunk(raw)), nil
}

// Load parses the word file at path.
func Load(path string, format Format) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer f.Close()
	d, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return d, nil
}

// Default parses the word list embedded in the binary.
func Default() (*Dictionary, error) {
	raw, err := assets.WordList()
	if err != nil {
		return nil, err
	}
	return Parse(strings.NewReader(raw), FormatLines)
}

// chunk keeps only a–z and cuts the result into WordLength-sized words.
func chunk(raw []byte) []string {
	var (
		out []string
		buf = make([]byte, 0, WordLength)
	)
	for _, c := range raw {
		if c < 'a' || c > 'z' {
			continue
		}
		buf = append(buf, c)
		if len(buf) == WordLength {
			out = append(out, string(buf))
			buf = buf[:0]
		}
	}
	return out
}

// readLines returns one lowercased, trimmed entry per non-empty line.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Contains reports whether w is in the dictionary. The match is exact.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[w]
	return ok
}

// PickRandom returns a cryptographically random word.
func (d *Dictionary) PickRandom() (string, error) {
	if len(d.words) == 0 {
		return "", ErrEmptyDictionary
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.words))))
	if err != nil {
		return "", fmt.Errorf("pick random word: %w", err)
	}
	return d.words[nBig.Int64()], nil
}

// Pick returns the word at index i modulo Len. Negative i wraps as its unsigned value.
func (d *Dictionary) Pick(i int) (string, error) {
	if len(d.words) == 0 {
		return "", ErrEmptyDictionary
	}
	return d.words[uint(i)%uint(len(d.words))], nil
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// Words returns a copy of the word list in load order.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.words...)
}

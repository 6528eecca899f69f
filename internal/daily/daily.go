// Package daily derives a deterministic "word of the day" from the date.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Picker returns an answer picker that selects the word of the day for now().
func Picker(salt string, now func() time.Time) func(*words.Dictionary) (string, error) {
	return func(d *words.Dictionary) (string, error) {
		if d.Len() == 0 {
			return "", words.ErrEmptyDictionary
		}
		return d.Pick(WordIndex(now(), salt, d.Len()))
	}
}

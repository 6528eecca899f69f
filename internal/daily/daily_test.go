package daily

import (
	"errors"
	"testing"
	"time"

	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	d := time.Date(2024, 3, 2, 5, 0, 0, 0, loc)
	if got := DateKey(d); got != "2024-03-01" {
		t.Errorf("DateKey = %q, want 2024-03-01", got)
	}
}

func TestWordIndex(t *testing.T) {
	day := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	a := WordIndex(day, "salt", 100)
	if a < 0 || a >= 100 {
		t.Fatalf("index %d out of range", a)
	}
	if b := WordIndex(day.Add(6*time.Hour), "salt", 100); a != b {
		t.Errorf("same day gave %d and %d", a, b)
	}
	if WordIndex(day, "salt", 0) != 0 {
		t.Error("empty list should give 0")
	}
}

func TestPicker(t *testing.T) {
	d := words.New([]string{"apple", "angle", "argue", "crane"})
	now := func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }
	pick := Picker("salt", now)
	w1, err := pick(d)
	if err != nil {
		t.Fatal(err)
	}
	w2, _ := pick(d)
	if w1 != w2 || !d.Contains(w1) {
		t.Errorf("picks %q, %q", w1, w2)
	}
	if _, err := pick(words.New(nil)); !errors.Is(err, words.ErrEmptyDictionary) {
		t.Errorf("err = %v", err)
	}
}

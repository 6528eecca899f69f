package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func sampleRecord(t *testing.T) game.SaveRecord {
	t.Helper()
	dict := words.New([]string{"apple", "angle", "argue"})
	r := game.NewRoundWithAnswer(dict, "apple")
	if s := r.Guess("angle"); s != game.StatusAccepted {
		t.Fatalf("Guess = %s", s)
	}
	return r.Snapshot()
}

func TestEncode_Format(t *testing.T) {
	b, err := Encode(sampleRecord(t))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	s := string(b)
	for _, want := range []string{`"Word": "apple"`, `"GuessCount": 1`, `"angle"`, `"     "`, "\n  "} {
		if !strings.Contains(s, want) {
			t.Errorf("encoded save missing %q:\n%s", want, s)
		}
	}
}

func TestDecode_Corrupt(t *testing.T) {
	for name, in := range map[string]string{
		"empty":      "",
		"whitespace": "  \n",
		"garbage":    "not json",
		"truncated":  `{"Word": "apple", "Guesses": [`,
		"null":       "null",
		"no word":    `{"GuessCount": 0}`,
		"wrong type": `{"Word": 5}`,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode([]byte(in)); !errors.Is(err, ErrCorrupt) {
				t.Errorf("err = %v, want ErrCorrupt", err)
			}
		})
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := NewFileStore(filepath.Join(t.TempDir(), "nested", DefaultSaveFile))
	rec := sampleRecord(t)

	if err := fs.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := fs.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, rec) {
		t.Errorf("Load = %+v, want %+v", got, rec)
	}

	// Overwrite wholesale.
	rec.GuessCount = 0
	rec.Guesses[0] = "     "
	if err := fs.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _ = fs.Load(ctx)
	if got.GuessCount != 0 || got.Guesses[0] != "     " {
		t.Errorf("second save not applied: %+v", got)
	}
}

func TestFileStore_NotFoundAndClear(t *testing.T) {
	ctx := context.Background()
	fs := NewFileStore(filepath.Join(t.TempDir(), DefaultSaveFile))
	if _, err := fs.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load on missing file: %v", err)
	}
	if err := fs.Clear(ctx); err != nil {
		t.Fatalf("Clear on missing file: %v", err)
	}
	if err := fs.Save(ctx, sampleRecord(t)); err != nil {
		t.Fatal(err)
	}
	if err := fs.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(fs.Path()); !os.IsNotExist(err) {
		t.Errorf("save file still present: %v", err)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), DefaultSaveFile)
	if err := os.WriteFile(p, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(p).Load(context.Background()); !errors.Is(err, ErrCorrupt) {
		t.Errorf("err = %v, want ErrCorrupt", err)
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	if _, err := m.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("empty Load: %v", err)
	}
	rec := sampleRecord(t)
	if err := m.Save(ctx, rec); err != nil {
		t.Fatal(err)
	}
	got, err := m.Load(ctx)
	if err != nil || !reflect.DeepEqual(got, rec) {
		t.Fatalf("Load = %+v, %v", got, err)
	}
	_ = m.Clear(ctx)
	if _, err := m.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load after Clear: %v", err)
	}
}

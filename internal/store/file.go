// internal/store/file.go
//
// JSON save file for the in-progress round.
//
// Responsibilities:
//   - Encode/Decode a SaveRecord as indented JSON (Word, Guesses, GuessCount).
//   - Report missing saves as ErrNotFound and unreadable ones as ErrCorrupt.
//   - Write atomically (temp file + rename) so a crash never leaves half a save.
//   - Clear the save when the player declines another round.

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// DefaultSaveFile is the save file name used when none is configured.
const DefaultSaveFile = "save_state.json"

var (
	ErrNotFound = errors.New("store: no saved round")
	ErrCorrupt  = errors.New("store: saved round is corrupt")
)

// Encode renders rec as indented JSON with the fields Word, Guesses and GuessCount.
func Encode(rec game.SaveRecord) ([]byte, error) {
	if rec.Guesses == nil {
		rec.Guesses = []string{}
	}
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	return b, nil
}

// Decode parses data written by Encode. Empty, malformed, null or word-less
// input is reported as ErrCorrupt.
func Decode(data []byte) (game.SaveRecord, error) {
	var rec game.SaveRecord
	if len(bytes.TrimSpace(data)) == 0 {
		return rec, ErrCorrupt
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return game.SaveRecord{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if rec.Word == "" {
		return game.SaveRecord{}, ErrCorrupt
	}
	return rec, nil
}

// FileStore keeps the saved round in a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore writing to path (DefaultSaveFile when empty).
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultSaveFile
	}
	return &FileStore{path: path}
}

// Path returns the save file location.
func (f *FileStore) Path() string { return f.path }

// Save replaces the file wholesale. The record is written to a temp file in
// the same directory and renamed over the old one.
func (f *FileStore) Save(ctx context.Context, rec game.SaveRecord) error {
	b, err := Encode(rec)
	if err != nil {
		return err
	}
	dir := filepath.Dir(f.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	tmp, err := os.CreateTemp(dir, ".save-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close save: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

// Load reads and decodes the save file.
func (f *FileStore) Load(ctx context.Context) (game.SaveRecord, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return game.SaveRecord{}, ErrNotFound
	}
	if err != nil {
		return game.SaveRecord{}, fmt.Errorf("read %s: %w", f.path, err)
	}
	return Decode(b)
}

// Clear deletes the save file.
func (f *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", f.path, err)
	}
	return nil
}

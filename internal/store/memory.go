// internal/store/memory.go
//
// Persistence for a resumable round.
//
// A Store holds at most one saved round. Implementations:
//   - FileStore (file.go): the save file on disk, used by the game binary.
//   - memory (this file): in-process record, used in tests and when saving is disabled.
//
// Load reports ErrNotFound when nothing is saved and ErrCorrupt when the saved
// data cannot be decoded; callers treat both as "start a fresh round".

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Store defines the persistence interface for the saved round.
type Store interface {
	// Save overwrites the saved round with rec.
	Save(ctx context.Context, rec game.SaveRecord) error

	// Load returns the saved round, ErrNotFound or ErrCorrupt.
	Load(ctx context.Context) (game.SaveRecord, error)

	// Clear removes the saved round. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// memory keeps the encoded record so Load goes through the same decoder as files.
type memory struct {
	mu   sync.RWMutex // guards data
	data []byte       // nil when nothing is saved
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

func (m *memory) Save(ctx context.Context, rec game.SaveRecord) error {
	b, err := Encode(rec)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = b
	return nil
}

func (m *memory) Load(ctx context.Context) (game.SaveRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.data == nil {
		return game.SaveRecord{}, ErrNotFound
	}
	return Decode(m.data)
}

func (m *memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}

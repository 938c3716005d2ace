package repository

import (
	"context"
	"sync"

	"github.com/alexanderramin/senseflow/internal/docstore"
	"github.com/alexanderramin/senseflow/internal/domain"
)

// JSONHabitLogRepo implements HabitLogRepo as an ordered JSON array.
// Append re-reads the document and writes it back whole under the lock.
type JSONHabitLogRepo struct {
	path string
	mu   sync.Mutex
}

// NewJSONHabitLogRepo creates a HabitLogRepo backed by the document at
// path.
func NewJSONHabitLogRepo(path string) *JSONHabitLogRepo {
	return &JSONHabitLogRepo{path: path}
}

func (r *JSONHabitLogRepo) Append(ctx context.Context, e domain.HabitEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.read()
	if err != nil {
		return err
	}
	entries = append(entries, e)
	return docstore.WriteJSON(r.path, entries)
}

func (r *JSONHabitLogRepo) List(ctx context.Context) ([]domain.HabitEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

func (r *JSONHabitLogRepo) read() ([]domain.HabitEntry, error) {
	var entries []domain.HabitEntry
	found, err := docstore.ReadJSON(r.path, &entries)
	if err != nil {
		return nil, err
	}
	if !found {
		return []domain.HabitEntry{}, nil
	}
	return entries, nil
}

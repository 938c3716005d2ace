package repository

import (
	"context"
	"sync"

	"github.com/alexanderramin/senseflow/internal/docstore"
	"github.com/alexanderramin/senseflow/internal/domain"
)

// JSONCalendarRepo implements CalendarRepo on a single JSON document.
// Load always returns a usable calendar; an absent document yields an
// empty slot map.
type JSONCalendarRepo struct {
	path string
	mu   sync.Mutex
}

// NewJSONCalendarRepo creates a CalendarRepo backed by the document at
// path.
func NewJSONCalendarRepo(path string) *JSONCalendarRepo {
	return &JSONCalendarRepo{path: path}
}

func (r *JSONCalendarRepo) Load(ctx context.Context) (*domain.Calendar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var c domain.Calendar
	found, err := docstore.ReadJSON(r.path, &c)
	if err != nil {
		return nil, err
	}
	if !found || c.Slots == nil {
		return domain.NewCalendar(), nil
	}
	return &c, nil
}

func (r *JSONCalendarRepo) Save(ctx context.Context, c *domain.Calendar) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return docstore.WriteJSON(r.path, c)
}

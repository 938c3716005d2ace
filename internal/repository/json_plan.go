package repository

import (
	"context"
	"sync"

	"github.com/alexanderramin/senseflow/internal/docstore"
	"github.com/alexanderramin/senseflow/internal/domain"
)

// JSONPlanRepo implements PlanRepo on a single JSON document. A mutex
// serializes access so concurrent read-modify-write cycles cannot lose
// updates.
type JSONPlanRepo struct {
	path string
	mu   sync.Mutex
}

// NewJSONPlanRepo creates a PlanRepo backed by the document at path.
func NewJSONPlanRepo(path string) *JSONPlanRepo {
	return &JSONPlanRepo{path: path}
}

func (r *JSONPlanRepo) Load(ctx context.Context) (*domain.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var p domain.Plan
	found, err := docstore.ReadJSON(r.path, &p)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &p, nil
}

func (r *JSONPlanRepo) Save(ctx context.Context, p *domain.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return docstore.WriteJSON(r.path, p)
}

package repository

import (
	"context"

	"github.com/alexanderramin/senseflow/internal/domain"
)

// PlanRepo persists the single live plan with whole-document replace
// semantics. Load returns (nil, nil) when no plan has been generated.
type PlanRepo interface {
	Load(ctx context.Context) (*domain.Plan, error)
	Save(ctx context.Context, p *domain.Plan) error
}

// HabitLogRepo is the append-only log of performed study sessions.
// Insertion order is preserved.
type HabitLogRepo interface {
	Append(ctx context.Context, e domain.HabitEntry) error
	List(ctx context.Context) ([]domain.HabitEntry, error)
}

// CalendarRepo persists the weekly slot map, independent of the plan
// document.
type CalendarRepo interface {
	Load(ctx context.Context) (*domain.Calendar, error)
	Save(ctx context.Context, c *domain.Calendar) error
}

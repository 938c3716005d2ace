package service

import (
	"context"
	"time"

	"github.com/alexanderramin/senseflow/internal/coach"
	"github.com/alexanderramin/senseflow/internal/domain"
)

// PlanTextGenerator produces the free-form plan text for a request.
// *coach.Coach is the production implementation.
type PlanTextGenerator interface {
	PlanText(ctx context.Context, req coach.PlanRequest) (string, error)
}

// PlanService owns the live plan: generation, progress tracking and
// display. Every transition persists the full plan immediately.
type PlanService interface {
	// Generate builds a fresh plan from the model output and replaces the
	// persisted plan wholesale. A generation failure leaves any prior
	// plan untouched.
	Generate(ctx context.Context, req coach.PlanRequest) (*domain.Plan, error)

	// Current returns the live plan, or domain.ErrNoPlan when none has
	// been generated.
	Current(ctx context.Context) (*domain.Plan, error)

	// CompleteNext marks the earliest pending session completed and
	// advances the next-session pointer. Returns
	// domain.ErrAlreadyCompleted, without touching state, when the plan
	// is already finished.
	CompleteNext(ctx context.Context) (*domain.StudySession, error)

	// NextDisplay returns a human-readable description of the earliest
	// pending session, a completion message when none is pending, or an
	// absence message when no plan exists.
	NextDisplay(ctx context.Context) (string, error)
}

// Stats is the aggregated dashboard view over the habit log.
type Stats struct {
	TotalHours  float64
	Streak      int
	HoursByTask map[string]float64
	Entries     []domain.HabitEntry
}

// HabitService appends to and aggregates the habit log.
type HabitService interface {
	// Log appends a study session performed today. Hours is accepted
	// without range validation.
	Log(ctx context.Context, hours float64, task string) (domain.HabitEntry, error)

	Stats(ctx context.Context) (*Stats, error)
}

// WeekView is the rendered state of the weekly planner.
type WeekView struct {
	Start     time.Time
	Label     string
	Slots     []domain.SlotExport
	Deadlines []domain.Deadline
}

// CalendarService manages the weekly slot map.
type CalendarService interface {
	// Assign links a slot to a plan session. When the plan or session
	// does not exist the assignment is dropped silently, tolerating stale
	// session references.
	Assign(ctx context.Context, key domain.SlotKey, sessionID int) error

	// AddFreeform stores a plain label at the slot. Blank text is a
	// no-op.
	AddFreeform(ctx context.Context, key domain.SlotKey, text string) error

	// ViewNotes returns the notes of a linked slot, or a fixed message
	// when the slot holds none.
	ViewNotes(ctx context.Context, key domain.SlotKey) (string, error)

	// Snapshot returns the current week's planner state, including plan
	// deadlines for rendering.
	Snapshot(ctx context.Context) (*WeekView, error)
}

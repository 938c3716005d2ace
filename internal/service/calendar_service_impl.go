package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/senseflow/internal/domain"
	"github.com/alexanderramin/senseflow/internal/repository"
)

// NoNotesMessage is returned when a slot holds no structured notes.
const NoNotesMessage = "No notes for this slot."

type calendarService struct {
	calendar repository.CalendarRepo
	plans    repository.PlanRepo
	now      func() time.Time
}

// NewCalendarService creates a CalendarService over the given stores.
// The plan store is only read, for resolving session references.
func NewCalendarService(calendar repository.CalendarRepo, plans repository.PlanRepo) CalendarService {
	return &calendarService{calendar: calendar, plans: plans, now: time.Now}
}

func (s *calendarService) Assign(ctx context.Context, key domain.SlotKey, sessionID int) error {
	if err := key.Validate(); err != nil {
		return err
	}

	plan, err := s.plans.Load(ctx)
	if err != nil {
		return err
	}
	if plan == nil {
		// Stale or premature reference: drop the assignment, keep the
		// slot map untouched.
		return nil
	}
	session := plan.Session(sessionID)
	if session == nil {
		return nil
	}

	cal, err := s.calendar.Load(ctx)
	if err != nil {
		return err
	}
	id := session.ID
	cal.Set(key, domain.SlotValue{
		Kind:      domain.SlotLinked,
		Label:     session.Task,
		Notes:     session.Notes,
		SessionID: &id,
	})
	return s.calendar.Save(ctx, cal)
}

func (s *calendarService) AddFreeform(ctx context.Context, key domain.SlotKey, text string) error {
	if err := key.Validate(); err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	cal, err := s.calendar.Load(ctx)
	if err != nil {
		return err
	}
	cal.Set(key, domain.SlotValue{Kind: domain.SlotFreeform, Label: text})
	return s.calendar.Save(ctx, cal)
}

func (s *calendarService) ViewNotes(ctx context.Context, key domain.SlotKey) (string, error) {
	if err := key.Validate(); err != nil {
		return "", err
	}

	cal, err := s.calendar.Load(ctx)
	if err != nil {
		return "", err
	}
	v, ok := cal.Get(key)
	if !ok || v.Kind != domain.SlotLinked || v.Notes == "" {
		return NoNotesMessage, nil
	}
	return v.Notes, nil
}

func (s *calendarService) Snapshot(ctx context.Context) (*WeekView, error) {
	cal, err := s.calendar.Load(ctx)
	if err != nil {
		return nil, err
	}

	var deadlines []domain.Deadline
	plan, err := s.plans.Load(ctx)
	if err != nil {
		return nil, err
	}
	if plan != nil {
		deadlines = plan.Deadlines
	}

	start := domain.StartOfWeek(s.now())
	return &WeekView{
		Start:     start,
		Label:     domain.WeekLabel(start),
		Slots:     cal.Export(),
		Deadlines: deadlines,
	}, nil
}

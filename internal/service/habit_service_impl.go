package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/senseflow/internal/analytics"
	"github.com/alexanderramin/senseflow/internal/domain"
	"github.com/alexanderramin/senseflow/internal/repository"
	"github.com/google/uuid"
)

type habitService struct {
	log repository.HabitLogRepo
	now func() time.Time
}

// NewHabitService creates a HabitService over the given habit log store.
func NewHabitService(log repository.HabitLogRepo) HabitService {
	return &habitService{log: log, now: time.Now}
}

func (s *habitService) Log(ctx context.Context, hours float64, task string) (domain.HabitEntry, error) {
	entry := domain.HabitEntry{
		ID:    uuid.New().String(),
		Date:  s.now().Format(domain.DateLayout),
		Task:  task,
		Hours: hours,
	}
	if err := s.log.Append(ctx, entry); err != nil {
		return domain.HabitEntry{}, fmt.Errorf("logging study session: %w", err)
	}
	return entry, nil
}

func (s *habitService) Stats(ctx context.Context) (*Stats, error) {
	entries, err := s.log.List(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalHours:  analytics.TotalHours(entries),
		Streak:      analytics.StudyStreak(entries),
		HoursByTask: analytics.HoursByTask(entries),
		Entries:     entries,
	}, nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/senseflow/internal/coach"
	"github.com/alexanderramin/senseflow/internal/domain"
	"github.com/alexanderramin/senseflow/internal/planner"
	"github.com/alexanderramin/senseflow/internal/repository"
)

const (
	noPlanMessage   = "Generate a study plan to see your next task"
	finishedMessage = "All sessions completed. Great work!"
)

type planService struct {
	plans     repository.PlanRepo
	generator PlanTextGenerator
}

// NewPlanService creates a PlanService over the given plan store and
// text generator.
func NewPlanService(plans repository.PlanRepo, generator PlanTextGenerator) PlanService {
	return &planService{plans: plans, generator: generator}
}

func (s *planService) Generate(ctx context.Context, req coach.PlanRequest) (*domain.Plan, error) {
	// Validate before the model call so a bad request never costs a
	// network round trip and a failed call never touches stored state.
	tasks := make([]string, 0, len(req.Tasks))
	for _, task := range req.Tasks {
		if task = strings.TrimSpace(task); task != "" {
			tasks = append(tasks, task)
		}
	}
	if len(tasks) == 0 {
		return nil, domain.ErrNoTasks
	}
	req.Tasks = tasks
	// !(Hours > 0) also rejects NaN; the upper bound rejects +Inf.
	if !(req.Hours > 0) || req.Hours > planner.MaxHours {
		return nil, fmt.Errorf("%w: got %v, want 0 < hours <= %d", domain.ErrInvalidHours, req.Hours, planner.MaxHours)
	}

	text, err := s.generator.PlanText(ctx, req)
	if err != nil {
		return nil, err
	}

	plan, err := planner.BuildPlan(text, req.Tasks, req.Hours, req.Style, req.Deadline)
	if err != nil {
		return nil, err
	}

	if err := s.plans.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("saving plan: %w", err)
	}
	return plan, nil
}

func (s *planService) Current(ctx context.Context) (*domain.Plan, error) {
	plan, err := s.plans.Load(ctx)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNoPlan
	}
	return plan, nil
}

func (s *planService) CompleteNext(ctx context.Context) (*domain.StudySession, error) {
	plan, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	completed, err := plan.CompleteNext()
	if err != nil {
		return nil, err
	}

	if err := s.plans.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("saving plan: %w", err)
	}
	return completed, nil
}

func (s *planService) NextDisplay(ctx context.Context) (string, error) {
	plan, err := s.plans.Load(ctx)
	if err != nil {
		return "", err
	}
	if plan == nil {
		return noPlanMessage, nil
	}
	next := plan.FirstPending()
	if next == nil {
		return finishedMessage, nil
	}
	return fmt.Sprintf("%s (%s)", next.Task, next.Focus), nil
}

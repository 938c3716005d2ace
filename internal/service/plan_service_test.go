package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/alexanderramin/senseflow/internal/coach"
	"github.com/alexanderramin/senseflow/internal/domain"
	"github.com/alexanderramin/senseflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text string
	err  error
}

func (f fakeGenerator) PlanText(ctx context.Context, req coach.PlanRequest) (string, error) {
	return f.text, f.err
}

func TestPlanService_Generate_WritesPlan(t *testing.T) {
	plans, _, _ := testutil.TempStores(t)
	ctx := context.Background()

	svc := NewPlanService(plans, fakeGenerator{text: testutil.SamplePlanText})
	plan, err := svc.Generate(ctx, coach.PlanRequest{
		Tasks: []string{"maths", "english"},
		Hours: 4,
		Style: "Pomodoro",
	})
	require.NoError(t, err)
	require.Len(t, plan.Sessions, 4)

	persisted, err := plans.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, plan, persisted)
}

func TestPlanService_Generate_EmptyTasksWritesNothing(t *testing.T) {
	plans, _, _ := testutil.TempStores(t)
	ctx := context.Background()

	svc := NewPlanService(plans, fakeGenerator{text: "unused"})
	_, err := svc.Generate(ctx, coach.PlanRequest{Hours: 3, Style: "Pomodoro"})
	assert.ErrorIs(t, err, domain.ErrNoTasks)

	persisted, err := plans.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, persisted, "no document may be written on invalid input")
}

func TestPlanService_Generate_InvalidHoursWritesNothing(t *testing.T) {
	plans, _, _ := testutil.TempStores(t)
	ctx := context.Background()

	svc := NewPlanService(plans, fakeGenerator{text: "unused"})
	for _, hours := range []float64{0, -2, math.NaN(), math.Inf(1), 1e12} {
		_, err := svc.Generate(ctx, coach.PlanRequest{Tasks: []string{"maths"}, Hours: hours, Style: "Pomodoro"})
		assert.ErrorIs(t, err, domain.ErrInvalidHours, "hours=%v", hours)
	}

	persisted, err := plans.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestPlanService_Generate_FailureKeepsPriorPlan(t *testing.T) {
	plans, _, _ := testutil.TempStores(t)
	ctx := context.Background()

	good := NewPlanService(plans, fakeGenerator{text: testutil.SamplePlanText})
	prior, err := good.Generate(ctx, coach.PlanRequest{Tasks: []string{"maths"}, Hours: 2, Style: "Pomodoro"})
	require.NoError(t, err)

	bad := NewPlanService(plans, fakeGenerator{err: errors.New("model unreachable")})
	_, err = bad.Generate(ctx, coach.PlanRequest{Tasks: []string{"english"}, Hours: 2, Style: "Pomodoro"})
	require.Error(t, err)

	persisted, err := plans.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, prior, persisted, "failed generation must not overwrite an existing valid plan")
}

func TestPlanService_CompleteNext_PersistsEachTransition(t *testing.T) {
	plans, _, _ := testutil.TempStores(t)
	ctx := context.Background()

	svc := NewPlanService(plans, fakeGenerator{text: ""})
	_, err := svc.Generate(ctx, coach.PlanRequest{Tasks: []string{"A", "B"}, Hours: 3, Style: "Pomodoro"})
	require.NoError(t, err)

	first, err := svc.CompleteNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	// A fresh service over the same store sees the transition.
	again := NewPlanService(plans, fakeGenerator{text: ""})
	second, err := again.CompleteNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	persisted, err := plans.Load(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, persisted.Completed)
	require.NotNil(t, persisted.Next)
	assert.Equal(t, 3, *persisted.Next)
}

func TestPlanService_CompleteNext_FinishedIsGuardedNoOp(t *testing.T) {
	plans, _, _ := testutil.TempStores(t)
	ctx := context.Background()

	svc := NewPlanService(plans, fakeGenerator{text: ""})
	_, err := svc.Generate(ctx, coach.PlanRequest{Tasks: []string{"A"}, Hours: 2, Style: "Pomodoro"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = svc.CompleteNext(ctx)
		require.NoError(t, err)
	}

	_, err = svc.CompleteNext(ctx)
	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)

	persisted, err := plans.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, persisted.Completed, 2, "repeat completion must not duplicate entries")
	assert.Nil(t, persisted.Next)
}

func TestPlanService_CompleteNext_NoPlan(t *testing.T) {
	plans, _, _ := testutil.TempStores(t)

	svc := NewPlanService(plans, fakeGenerator{text: ""})
	_, err := svc.CompleteNext(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoPlan)
}

func TestPlanService_NextDisplay(t *testing.T) {
	plans, _, _ := testutil.TempStores(t)
	ctx := context.Background()
	svc := NewPlanService(plans, fakeGenerator{text: ""})

	display, err := svc.NextDisplay(ctx)
	require.NoError(t, err)
	assert.Equal(t, noPlanMessage, display)

	_, err = svc.Generate(ctx, coach.PlanRequest{Tasks: []string{"maths"}, Hours: 1, Style: "Deep Work"})
	require.NoError(t, err)

	display, err = svc.NextDisplay(ctx)
	require.NoError(t, err)
	assert.Equal(t, "maths (Deep Work)", display)

	_, err = svc.CompleteNext(ctx)
	require.NoError(t, err)

	display, err = svc.NextDisplay(ctx)
	require.NoError(t, err)
	assert.Equal(t, finishedMessage, display)
}

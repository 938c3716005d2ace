package cli

import (
	"context"

	"github.com/alexanderramin/senseflow/internal/domain"
	"github.com/alexanderramin/senseflow/internal/service"
	"github.com/spf13/cobra"
)

// Motivator produces motivational and narrative text for the dashboard
// commands. *coach.Coach is the production implementation.
type Motivator interface {
	Quote(ctx context.Context) string
	Insights(ctx context.Context, entries []domain.HabitEntry) string
	WeeklyReview(ctx context.Context, entries []domain.HabitEntry) string
}

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans    service.PlanService
	Habits   service.HabitService
	Calendar service.CalendarService
	Coach    Motivator
}

// NewRootCmd creates the top-level "senseflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "senseflow",
		Short: "Personal study planner and habit tracker",
	}

	root.AddCommand(
		newPlanCmd(app),
		newLogCmd(app),
		newStatsCmd(app),
		newCalendarCmd(app),
		newQuoteCmd(app),
		newInsightsCmd(app),
		newReviewCmd(app),
	)

	return root
}

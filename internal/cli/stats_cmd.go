package cli

import (
	"fmt"

	"github.com/alexanderramin/senseflow/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the study dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			stats, err := app.Habits.Stats(ctx)
			if err != nil {
				return err
			}
			next, err := app.Plans.NextDisplay(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Dashboard"))
			fmt.Fprintln(out, formatter.Dim(app.Coach.Quote(ctx)))
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Hours studied  %s\n", formatter.Bold(fmt.Sprintf("%.1f", stats.TotalHours)))
			fmt.Fprintf(out, "Study streak   %s\n", formatter.Bold(fmt.Sprintf("%d days", stats.Streak)))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.Header("Study time breakdown"))
			fmt.Fprintln(out, formatter.HoursBreakdown(stats.HoursByTask))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Your next task:", formatter.Bold(next))
			return nil
		},
	}
}

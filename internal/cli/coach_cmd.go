package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQuoteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Print a motivational study quote",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), app.Coach.Quote(cmd.Context()))
			return nil
		},
	}
}

func newInsightsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show quick insights from the habit log",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Habits.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.Coach.Insights(cmd.Context(), stats.Entries))
			return nil
		},
	}
}

func newReviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Summarise the week's study habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Habits.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.Coach.WeeklyReview(cmd.Context(), stats.Entries))
			return nil
		},
	}
}

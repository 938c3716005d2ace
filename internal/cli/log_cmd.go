package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var hours float64
	var task string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a completed study session",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Habits.Log(cmd.Context(), hours, task)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Study session saved! %.1f hours of %s on %s\n", entry.Hours, entry.Task, entry.Date)
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 0, "Hours studied")
	cmd.Flags().StringVar(&task, "task", "", "Task studied (e.g. maths)")
	_ = cmd.MarkFlagRequired("hours")
	_ = cmd.MarkFlagRequired("task")

	return cmd
}

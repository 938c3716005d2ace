package cli

import (
	"fmt"

	"github.com/alexanderramin/senseflow/internal/cli/formatter"
	"github.com/alexanderramin/senseflow/internal/domain"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Manage the weekly planner",
	}

	cmd.AddCommand(
		newCalendarAssignCmd(app),
		newCalendarAddCmd(app),
		newCalendarNotesCmd(app),
		newCalendarShowCmd(app),
	)

	return cmd
}

func newCalendarAssignCmd(app *App) *cobra.Command {
	var day, sessionID int
	var slotTime string

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Place a plan session on a calendar slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			key := domain.SlotKey{Day: day, Time: slotTime}
			if err := app.Calendar.Assign(cmd.Context(), key, sessionID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Assigned session %d to %s %s\n", sessionID, domain.Days[key.Day], key.Time)
			return nil
		},
	}

	cmd.Flags().IntVar(&day, "day", 0, "Day index, 0 (Monday) to 6 (Sunday)")
	cmd.Flags().StringVar(&slotTime, "time", "08:00", "Slot time (HH:00, 24h)")
	cmd.Flags().IntVar(&sessionID, "session", 0, "Session ID from the current plan")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}

func newCalendarAddCmd(app *App) *cobra.Command {
	var day int
	var slotTime, text string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a freeform entry to a calendar slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			key := domain.SlotKey{Day: day, Time: slotTime}
			if err := app.Calendar.AddFreeform(cmd.Context(), key, text); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added entry at %s %s\n", domain.Days[key.Day], key.Time)
			return nil
		},
	}

	cmd.Flags().IntVar(&day, "day", 0, "Day index, 0 (Monday) to 6 (Sunday)")
	cmd.Flags().StringVar(&slotTime, "time", "08:00", "Slot time (HH:00, 24h)")
	cmd.Flags().StringVar(&text, "text", "", "Entry text (e.g. Math revision)")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newCalendarNotesCmd(app *App) *cobra.Command {
	var day int
	var slotTime string

	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Show the notes stored on a calendar slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			key := domain.SlotKey{Day: day, Time: slotTime}
			notes, err := app.Calendar.ViewNotes(cmd.Context(), key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), notes)
			return nil
		},
	}

	cmd.Flags().IntVar(&day, "day", 0, "Day index, 0 (Monday) to 6 (Sunday)")
	cmd.Flags().StringVar(&slotTime, "time", "08:00", "Slot time (HH:00, 24h)")

	return cmd
}

func newCalendarShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show this week's planner",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Calendar.Snapshot(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(view.Label))

			if len(view.Slots) == 0 {
				fmt.Fprintln(out, formatter.Dim("Nothing scheduled yet."))
			} else {
				headers := []string{"DAY", "TIME", "ENTRY", "NOTES"}
				rows := make([][]string, 0, len(view.Slots))
				for _, s := range view.Slots {
					notes := s.Notes
					if r := []rune(notes); len(r) > 40 {
						notes = string(r[:37]) + "..."
					}
					rows = append(rows, []string{s.Day, s.Time, s.Text, formatter.Dim(notes)})
				}
				fmt.Fprint(out, formatter.RenderTable(headers, rows))
			}

			for _, d := range view.Deadlines {
				fmt.Fprintf(out, "\nDeadline: %s on %s\n", formatter.Bold(d.Name), d.Date)
			}
			return nil
		},
	}
}

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/senseflow/internal/cli/formatter"
	"github.com/alexanderramin/senseflow/internal/coach"
	"github.com/alexanderramin/senseflow/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and track the study plan",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
		newPlanShowCmd(app),
		newPlanNextCmd(app),
		newPlanCompleteCmd(app),
	)

	return cmd
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	var tasks []string
	var hours float64
	var difficulty, style, deadlineName, deadlineDate string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new study plan, replacing the current one",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.ValidDifficulties[difficulty] {
				return fmt.Errorf("unknown difficulty %q (Easy, Medium, Hard)", difficulty)
			}
			if !domain.ValidStudyStyles[style] {
				return fmt.Errorf("unknown study style %q (Pomodoro, Deep Work, Short Sessions)", style)
			}

			req := coach.PlanRequest{
				Tasks:      tasks,
				Hours:      hours,
				Difficulty: difficulty,
				Style:      style,
			}
			if deadlineDate != "" {
				name := deadlineName
				if name == "" {
					name = "Deadline"
				}
				req.Deadline = &domain.Deadline{Name: name, Date: deadlineDate}
			}

			plan, err := app.Plans.Generate(cmd.Context(), req)
			if err != nil {
				if errors.Is(err, domain.ErrNoTasks) {
					return fmt.Errorf("add at least 1 task before generating a plan")
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generated a plan with %d one-hour sessions.\n\n", len(plan.Sessions))
			fmt.Fprintln(out, renderSessions(plan))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&tasks, "task", nil, "Task to study (repeatable)")
	cmd.Flags().Float64Var(&hours, "hours", 1, "Available study hours")
	cmd.Flags().StringVar(&difficulty, "difficulty", string(domain.DifficultyMedium), "Difficulty preference (Easy, Medium, Hard)")
	cmd.Flags().StringVar(&style, "style", string(domain.StylePomodoro), "Study style (Pomodoro, Deep Work, Short Sessions)")
	cmd.Flags().StringVar(&deadlineName, "deadline-name", "", "Deadline name (e.g. Maths Exam)")
	cmd.Flags().StringVar(&deadlineDate, "deadline-date", "", "Deadline date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("task")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current plan and its progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			plan, err := app.Plans.Current(cmd.Context())
			if err != nil {
				if errors.Is(err, domain.ErrNoPlan) {
					fmt.Fprintln(out, "No plan yet. Run 'senseflow plan generate' first.")
					return nil
				}
				return err
			}

			if raw {
				fmt.Fprintln(out, plan.Text)
				return nil
			}

			fmt.Fprint(out, formatter.RenderBox("Study Plan", renderSessions(plan)))
			fmt.Fprintln(out)
			for _, d := range plan.Deadlines {
				fmt.Fprintf(out, "Deadline: %s on %s\n", formatter.Bold(d.Name), d.Date)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the raw model output instead of the session table")

	return cmd
}

func newPlanNextCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the next pending session",
		RunE: func(cmd *cobra.Command, args []string) error {
			display, err := app.Plans.NextDisplay(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), display)
			return nil
		},
	}
}

func newPlanCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete",
		Short: "Mark the next pending session as completed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			session, err := app.Plans.CompleteNext(ctx)
			if err != nil {
				if errors.Is(err, domain.ErrAlreadyCompleted) {
					fmt.Fprintln(out, "All sessions are already completed.")
					return nil
				}
				if errors.Is(err, domain.ErrNoPlan) {
					fmt.Fprintln(out, "No plan yet. Run 'senseflow plan generate' first.")
					return nil
				}
				return err
			}

			fmt.Fprintf(out, "Completed session %d: %s\n", session.ID, session.Task)

			display, err := app.Plans.NextDisplay(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Next up:", display)
			return nil
		},
	}
}

func renderSessions(plan *domain.Plan) string {
	var b strings.Builder
	for _, s := range plan.Sessions {
		line := fmt.Sprintf("%d. %s · %s", s.ID, s.Task, firstLine(s.Focus))
		if plan.IsCompleted(s.ID) {
			b.WriteString(formatter.Done(line))
		} else {
			b.WriteString(formatter.Pending(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

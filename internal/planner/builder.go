package planner

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/senseflow/internal/domain"
)

// MaxHours bounds the hour budget for one plan to a full day.
const MaxHours = 24

// BuildPlan combines the raw model text with the user's task list and
// hour budget into a deterministic sequence of one-hour sessions.
//
// A fractional budget rounds up: sessions are appended while the count is
// below hours, so 2.5 hours yields 3 sessions. Tasks cycle round-robin
// when the budget exceeds the task count. Session i takes the i-th parsed
// focus block and note; when the model output runs short, the focus falls
// back to the style label and the note to a generated reminder.
func BuildPlan(text string, tasks []string, hours float64, style string, deadline *domain.Deadline) (*domain.Plan, error) {
	if len(tasks) == 0 {
		return nil, domain.ErrNoTasks
	}
	// !(hours > 0) also rejects NaN; the upper bound rejects +Inf.
	if !(hours > 0) || hours > MaxHours {
		return nil, fmt.Errorf("%w: got %v, want 0 < hours <= %d", domain.ErrInvalidHours, hours, MaxHours)
	}

	focusBlocks, notesLines := ParsePlanText(text)

	count := int(math.Ceil(hours))
	sessions := make([]domain.StudySession, 0, count)
	for len(sessions) < count {
		i := len(sessions)
		task := tasks[i%len(tasks)]

		focus := style
		if i < len(focusBlocks) {
			focus = focusBlocks[i]
		}
		notes := fmt.Sprintf("Focus on %s using %s.", task, style)
		if i < len(notesLines) {
			notes = notesLines[i]
		}

		sessions = append(sessions, domain.StudySession{
			ID:            i + 1,
			Task:          task,
			DurationHours: 1,
			Focus:         focus,
			Notes:         notes,
		})
	}

	first := sessions[0].ID
	plan := &domain.Plan{
		Text:      text,
		Sessions:  sessions,
		Deadlines: []domain.Deadline{},
		Completed: []int{},
		Next:      &first,
	}
	if deadline != nil && strings.TrimSpace(deadline.Date) != "" {
		plan.Deadlines = []domain.Deadline{*deadline}
	}
	return plan, nil
}

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/alexanderramin/senseflow/internal/repository"
)

// SamplePlanText is a realistic model output following the plan text
// convention: per-hour sections with "Focus:" time blocks and
// "- **Notes:**" markers, both inline and block form.
const SamplePlanText = `## Hour 1: Maths
Focus:
25 minutes revising calculus
Short break of 5 minutes
25 minutes practice problems
- **Notes:** Start with the hardest topic while fresh.
---
## Hour 2: English
Focus:
30 minutes reading comprehension
Short break
- **Notes:**
- Summarise each paragraph in one line
- Keep a vocabulary list
---
### Motivational Message
You've got this! Keep going.
`

// TempStores returns plan, habit-log and calendar repositories rooted in
// a per-test temp directory, so tests touch no shared state.
func TempStores(t *testing.T) (*repository.JSONPlanRepo, *repository.JSONHabitLogRepo, *repository.JSONCalendarRepo) {
	t.Helper()
	dir := t.TempDir()
	return repository.NewJSONPlanRepo(filepath.Join(dir, "current_plan.json")),
		repository.NewJSONHabitLogRepo(filepath.Join(dir, "habit_log.json")),
		repository.NewJSONCalendarRepo(filepath.Join(dir, "calendar.json"))
}

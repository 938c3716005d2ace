package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alexanderramin/senseflow/internal/cli/formatter"
	"github.com/alexanderramin/senseflow/internal/coach"
	"github.com/alexanderramin/senseflow/internal/domain"
	"github.com/alexanderramin/senseflow/internal/service"
	"github.com/alexanderramin/senseflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	formatter.NoColor()
	m.Run()
}

type stubGenerator struct{ text string }

func (s stubGenerator) PlanText(ctx context.Context, req coach.PlanRequest) (string, error) {
	return s.text, nil
}

type stubMotivator struct{}

func (stubMotivator) Quote(ctx context.Context) string { return "Keep going." }

func (stubMotivator) Insights(ctx context.Context, entries []domain.HabitEntry) string {
	return "- insight"
}

func (stubMotivator) WeeklyReview(ctx context.Context, entries []domain.HabitEntry) string {
	return "weekly review"
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	plans, habits, calendars := testutil.TempStores(t)
	return &App{
		Plans:    service.NewPlanService(plans, stubGenerator{text: testutil.SamplePlanText}),
		Habits:   service.NewHabitService(habits),
		Calendar: service.NewCalendarService(calendars, plans),
		Coach:    stubMotivator{},
	}
}

func runCmd(t *testing.T, app *App, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestPlanGenerateCmd(t *testing.T) {
	app := newTestApp(t)

	out := runCmd(t, app, "plan", "generate", "--task", "maths", "--task", "english", "--hours", "2")
	assert.Contains(t, out, "Generated a plan with 2 one-hour sessions.")
	assert.Contains(t, out, "1. maths")
	assert.Contains(t, out, "2. english")
}

func TestPlanGenerateCmd_NoTasks(t *testing.T) {
	app := newTestApp(t)

	root := NewRootCmd(app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"plan", "generate", "--task", ""})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "add at least 1 task")
}

func TestPlanGenerateCmd_RejectsUnknownStyle(t *testing.T) {
	app := newTestApp(t)

	root := NewRootCmd(app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"plan", "generate", "--task", "maths", "--style", "Cramming"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown study style")
}

func TestPlanShowCmd_NoPlan(t *testing.T) {
	app := newTestApp(t)

	out := runCmd(t, app, "plan", "show")
	assert.Contains(t, out, "No plan yet.")
}

func TestPlanCompleteCmd(t *testing.T) {
	app := newTestApp(t)
	runCmd(t, app, "plan", "generate", "--task", "maths", "--hours", "2")

	out := runCmd(t, app, "plan", "complete")
	assert.Contains(t, out, "Completed session 1: maths")
	assert.Contains(t, out, "Next up:")

	runCmd(t, app, "plan", "complete")
	out = runCmd(t, app, "plan", "complete")
	assert.Contains(t, out, "All sessions are already completed.")
}

func TestPlanNextCmd(t *testing.T) {
	app := newTestApp(t)
	runCmd(t, app, "plan", "generate", "--task", "maths", "--hours", "1")

	out := runCmd(t, app, "plan", "next")
	assert.Contains(t, out, "maths")
}

func TestLogCmd(t *testing.T) {
	app := newTestApp(t)

	out := runCmd(t, app, "log", "--hours", "1.5", "--task", "maths")
	assert.Contains(t, out, "Study session saved! 1.5 hours of maths")
}

func TestStatsCmd(t *testing.T) {
	app := newTestApp(t)
	runCmd(t, app, "log", "--hours", "2", "--task", "maths")

	out := runCmd(t, app, "stats")
	assert.Contains(t, out, "DASHBOARD")
	assert.Contains(t, out, "Keep going.")
	assert.Contains(t, out, "Hours studied  2.0")
	assert.Contains(t, out, "Study streak   1 days")
	assert.Contains(t, out, "maths")
}

func TestCalendarCmds(t *testing.T) {
	app := newTestApp(t)
	runCmd(t, app, "plan", "generate", "--task", "maths", "--hours", "1")

	out := runCmd(t, app, "calendar", "assign", "--day", "0", "--time", "08:00", "--session", "1")
	assert.Contains(t, out, "Assigned session 1 to Monday 08:00")

	out = runCmd(t, app, "calendar", "add", "--day", "5", "--time", "10:00", "--text", "gym")
	assert.Contains(t, out, "Added entry at Saturday 10:00")

	// The week label goes through Header, which uppercases.
	out = runCmd(t, app, "calendar", "show")
	assert.Contains(t, out, "WEEK: ")
	assert.Contains(t, out, "maths")
	assert.Contains(t, out, "gym")

	out = runCmd(t, app, "calendar", "notes", "--day", "0", "--time", "08:00")
	assert.Contains(t, out, "Start with the hardest topic while fresh.")

	out = runCmd(t, app, "calendar", "notes", "--day", "5", "--time", "10:00")
	assert.Contains(t, out, service.NoNotesMessage)
}

func TestCalendarShowCmd_TruncatesNotesByRune(t *testing.T) {
	plans, habits, calendars := testutil.TempStores(t)
	app := &App{
		Plans:    service.NewPlanService(plans, stubGenerator{text: testutil.SamplePlanText}),
		Habits:   service.NewHabitService(habits),
		Calendar: service.NewCalendarService(calendars, plans),
		Coach:    stubMotivator{},
	}

	id := 1
	notes := strings.Repeat("é", 50)
	cal := domain.NewCalendar()
	cal.Set(domain.SlotKey{Day: 0, Time: "08:00"}, domain.SlotValue{
		Kind: domain.SlotLinked, Label: "maths", Notes: notes, SessionID: &id,
	})
	require.NoError(t, calendars.Save(context.Background(), cal))

	out := runCmd(t, app, "calendar", "show")
	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, strings.Repeat("é", 37)+"...")
	assert.NotContains(t, out, strings.Repeat("é", 38))
}

func TestCoachCmds(t *testing.T) {
	app := newTestApp(t)

	assert.Contains(t, runCmd(t, app, "quote"), "Keep going.")
	assert.Contains(t, runCmd(t, app, "insights"), "- insight")
	assert.Contains(t, runCmd(t, app, "review"), "weekly review")
}

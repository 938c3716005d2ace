package coach

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/senseflow/internal/analytics"
	"github.com/alexanderramin/senseflow/internal/domain"
)

// fallbackQuotes rotate by day so the dashboard stays fresh without a
// model call.
var fallbackQuotes = []string{
	"Stay consistent: small sessions add up.",
	"One focused hour beats three distracted ones.",
	"Show up today; momentum does the rest.",
	"Done is better than perfect. Start now.",
	"Your streak is built one session at a time.",
}

func fallbackQuote() string {
	return fallbackQuotes[time.Now().YearDay()%len(fallbackQuotes)]
}

// fallbackInsights derives three bullets directly from the log when the
// model cannot.
func fallbackInsights(entries []domain.HabitEntry) string {
	if len(entries) == 0 {
		return "- No study data yet.\n- Log a session to start tracking.\n- Insights appear after your first entry."
	}
	total := analytics.TotalHours(entries)
	days := analytics.StudyStreak(entries)
	top, topHours := topTask(entries)

	// days can be zero when entries carry no dates (hand-edited log).
	perDay := total
	if days > 0 {
		perDay = total / float64(days)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "- You have logged %.1f hours across %d study days.\n", total, days)
	fmt.Fprintf(&b, "- Average of %.1f hours per study day.\n", perDay)
	fmt.Fprintf(&b, "- Most studied task: %s (%.1f hours).", top, topHours)
	return b.String()
}

// fallbackReview is a compact deterministic weekly summary.
func fallbackReview(entries []domain.HabitEntry) string {
	if len(entries) == 0 {
		return "No sessions logged this week. Pick one task and schedule a single hour to restart."
	}
	total := analytics.TotalHours(entries)
	days := analytics.StudyStreak(entries)
	top, topHours := topTask(entries)

	var b strings.Builder
	fmt.Fprintf(&b, "Weekly summary\n\n")
	fmt.Fprintf(&b, "- Total hours studied: %.1f\n", total)
	fmt.Fprintf(&b, "- Days with at least one session: %d\n", days)
	fmt.Fprintf(&b, "- Biggest focus: %s (%.1f hours)\n\n", top, topHours)
	fmt.Fprintf(&b, "Keep the cadence going: aim for one session on each weekday next week.")
	return b.String()
}

// topTask returns the task with the most summed hours, ties broken by
// name for determinism.
func topTask(entries []domain.HabitEntry) (string, float64) {
	byTask := analytics.HoursByTask(entries)
	if len(byTask) == 0 {
		return "(untitled)", 0
	}
	names := make([]string, 0, len(byTask))
	for name := range byTask {
		names = append(names, name)
	}
	sort.Strings(names)
	best := names[0]
	for _, name := range names[1:] {
		if byTask[name] > byTask[best] {
			best = name
		}
	}
	return best, byTask[best]
}

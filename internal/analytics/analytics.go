// Package analytics derives dashboard figures from the habit log. All
// functions are pure over the entry slice.
package analytics

import "github.com/alexanderramin/senseflow/internal/domain"

// TotalHours sums the hours field across all entries.
func TotalHours(entries []domain.HabitEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Hours
	}
	return total
}

// StudyStreak returns the number of distinct dates with at least one
// logged entry. Despite the name this is a distinct-day count, not a
// consecutive-day run.
func StudyStreak(entries []domain.HabitEntry) int {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Date != "" {
			seen[e.Date] = true
		}
	}
	return len(seen)
}

// HoursByTask maps each task name to its summed hours. Entries without a
// task are excluded.
func HoursByTask(entries []domain.HabitEntry) map[string]float64 {
	byTask := make(map[string]float64)
	for _, e := range entries {
		if e.Task == "" {
			continue
		}
		byTask[e.Task] += e.Hours
	}
	return byTask
}

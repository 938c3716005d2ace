package formatter

import (
	"fmt"
	"sort"
	"strings"
)

// barWidth is the character width of a full breakdown bar.
const barWidth = 24

// HoursBreakdown renders the per-task hour totals as labelled bars,
// longest first, the textual stand-in for the dashboard donut chart.
func HoursBreakdown(byTask map[string]float64) string {
	if len(byTask) == 0 {
		return Dim("No study data yet")
	}

	tasks := make([]string, 0, len(byTask))
	var max float64
	for task, hours := range byTask {
		tasks = append(tasks, task)
		if hours > max {
			max = hours
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		if byTask[tasks[i]] != byTask[tasks[j]] {
			return byTask[tasks[i]] > byTask[tasks[j]]
		}
		return tasks[i] < tasks[j]
	})

	labelWidth := 0
	for _, task := range tasks {
		if len(task) > labelWidth {
			labelWidth = len(task)
		}
	}

	var b strings.Builder
	for _, task := range tasks {
		hours := byTask[task]
		filled := 0
		if max > 0 {
			filled = int(hours / max * barWidth)
		}
		if filled < 1 {
			filled = 1
		}
		bar := StyleBlue.Render(strings.Repeat("█", filled)) +
			StyleDim.Render(strings.Repeat("░", barWidth-filled))
		fmt.Fprintf(&b, "%-*s  %s %s\n", labelWidth, task, bar, Dim(fmt.Sprintf("%.1fh", hours)))
	}
	return strings.TrimRight(b.String(), "\n")
}

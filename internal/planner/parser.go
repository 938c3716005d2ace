package planner

import "strings"

// focusPrefixes are the time-block line shapes the model is asked to emit
// inside a "Focus:" section. Lines inside the section that match none of
// them are dropped silently.
var focusPrefixes = []string{
	"25 minutes",
	"30 minutes",
	"15 minutes",
	"short break",
}

// noteTerminators end block-mode note collection: separators, headings
// and the closing motivational section of the plan.
var noteTerminators = []string{
	"---",
	"#",
	"hour ",
	"**hour",
	"motivat",
}

// ParsePlanText extracts per-hour focus blocks and notes from the raw
// model output in a single line-oriented pass. The two slices are
// parallel: entry i feeds session i. Malformed or missing sections never
// raise an error, the result just comes back shorter or empty.
func ParsePlanText(text string) (focusBlocks, notesLines []string) {
	var (
		focusCur []string
		noteCur  []string
		inFocus  bool
		inNote   bool
	)

	flushFocus := func() {
		if len(focusCur) > 0 {
			focusBlocks = append(focusBlocks, strings.Join(focusCur, "\n"))
			focusCur = nil
		}
	}
	flushNote := func() {
		joined := strings.TrimSpace(strings.Join(noteCur, "\n"))
		if joined != "" {
			notesLines = append(notesLines, joined)
		}
		noteCur = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		lower := strings.ToLower(line)

		// A notes marker ends the focus window and either yields an inline
		// note or opens block collection.
		if isNotesMarker(line) {
			if inFocus {
				flushFocus()
				inFocus = false
			}
			if inNote {
				flushNote()
			}
			if rest := inlineNoteText(line); rest != "" {
				notesLines = append(notesLines, rest)
				inNote = false
			} else {
				inNote = true
			}
			continue
		}

		if inNote {
			if isNoteTerminator(lower) {
				flushNote()
				inNote = false
				// fall through so a heading that also starts a focus
				// section is not swallowed
			} else {
				if line == "" {
					continue
				}
				noteCur = append(noteCur, stripBullet(line))
				continue
			}
		}

		if lower == "focus:" {
			flushFocus()
			inFocus = true
			continue
		}

		if inFocus && hasFocusPrefix(lower) {
			focusCur = append(focusCur, line)
		}
	}

	if inNote {
		flushNote()
	}
	flushFocus()
	return focusBlocks, notesLines
}

// isNotesMarker reports whether the line is a notes marker, tolerating
// bullet and emphasis decoration ("- **Notes:** ..." and plain "Notes:").
func isNotesMarker(line string) bool {
	trimmed := strings.TrimLeft(strings.ToLower(line), "-• \t*")
	return strings.HasPrefix(trimmed, "notes:")
}

// inlineNoteText returns the text following the notes marker on the same
// line, stripped of emphasis decoration, or "" when the marker stands
// alone.
func inlineNoteText(line string) string {
	idx := strings.Index(strings.ToLower(line), "notes:")
	if idx < 0 {
		return ""
	}
	rest := line[idx+len("notes:"):]
	return strings.Trim(rest, "* \t")
}

func isNoteTerminator(lower string) bool {
	for _, t := range noteTerminators {
		if strings.HasPrefix(lower, t) {
			return true
		}
	}
	return false
}

func hasFocusPrefix(lower string) bool {
	for _, p := range focusPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// stripBullet removes a leading "-" or "•" list marker.
func stripBullet(line string) string {
	for _, marker := range []string{"-", "•"} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker))
		}
	}
	return line
}

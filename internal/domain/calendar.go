package domain

import (
	"fmt"
	"regexp"
	"sort"
	"time"
)

// Days lists the weekly planner columns, Monday first.
var Days = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var slotTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):00$`)

// SlotKey addresses one calendar grid cell by day-of-week index (0 =
// Monday) and hour string ("HH:00").
type SlotKey struct {
	Day  int
	Time string
}

// String returns the document key form "d@HH:00".
func (k SlotKey) String() string {
	return fmt.Sprintf("%d@%s", k.Day, k.Time)
}

// Validate checks the day index and time shape.
func (k SlotKey) Validate() error {
	if k.Day < 0 || k.Day > 6 {
		return fmt.Errorf("%w: day index %d out of range 0-6", ErrInvalidSlot, k.Day)
	}
	if !slotTimePattern.MatchString(k.Time) {
		return fmt.Errorf("%w: time %q must be on the hour (HH:00)", ErrInvalidSlot, k.Time)
	}
	return nil
}

// ParseSlotKey parses the document key form produced by String.
func ParseSlotKey(s string) (SlotKey, error) {
	var k SlotKey
	if _, err := fmt.Sscanf(s, "%d@%s", &k.Day, &k.Time); err != nil {
		return SlotKey{}, fmt.Errorf("%w: malformed key %q", ErrInvalidSlot, s)
	}
	if err := k.Validate(); err != nil {
		return SlotKey{}, err
	}
	return k, nil
}

// SlotKind tags the two calendar cell variants.
type SlotKind string

const (
	// SlotFreeform is a plain text label with no session linkage.
	SlotFreeform SlotKind = "freeform"
	// SlotLinked references a session in the live plan. The reference is
	// weak: it may dangle after the plan is regenerated, in which case the
	// slot behaves as a plain label.
	SlotLinked SlotKind = "linked"
)

// SlotValue is the tagged variant stored in a calendar cell.
type SlotValue struct {
	Kind      SlotKind `json:"kind"`
	Label     string   `json:"label"`
	Notes     string   `json:"notes,omitempty"`
	SessionID *int     `json:"session_id,omitempty"`
}

// Calendar is the persisted weekly slot map. Keys collide by overwrite,
// last write wins.
type Calendar struct {
	Slots map[string]SlotValue `json:"slots"`
}

// NewCalendar returns an empty calendar with an initialized slot map.
func NewCalendar() *Calendar {
	return &Calendar{Slots: make(map[string]SlotValue)}
}

// Get returns the value at the given slot, if any.
func (c *Calendar) Get(key SlotKey) (SlotValue, bool) {
	v, ok := c.Slots[key.String()]
	return v, ok
}

// Set stores a value at the given slot, overwriting any prior occupant.
func (c *Calendar) Set(key SlotKey, v SlotValue) {
	if c.Slots == nil {
		c.Slots = make(map[string]SlotValue)
	}
	c.Slots[key.String()] = v
}

// SlotExport is one row of the ordered week export.
type SlotExport struct {
	Day   string `json:"day"`
	Time  string `json:"time"`
	Text  string `json:"text"`
	Notes string `json:"notes,omitempty"`
}

// Export returns the slot map as an ordered list, sorted by day then
// time, with day indices resolved to names.
func (c *Calendar) Export() []SlotExport {
	keys := make([]SlotKey, 0, len(c.Slots))
	for raw := range c.Slots {
		k, err := ParseSlotKey(raw)
		if err != nil {
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Day != keys[j].Day {
			return keys[i].Day < keys[j].Day
		}
		return keys[i].Time < keys[j].Time
	})
	out := make([]SlotExport, 0, len(keys))
	for _, k := range keys {
		v := c.Slots[k.String()]
		out = append(out, SlotExport{
			Day:   Days[k.Day],
			Time:  k.Time,
			Text:  v.Label,
			Notes: v.Notes,
		})
	}
	return out
}

// StartOfWeek returns the Monday of the week containing d, at midnight
// in d's location.
func StartOfWeek(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	y, m, day := d.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, day, 0, 0, 0, 0, d.Location())
}

// WeekLabel renders the human-readable span for the week starting at
// weekStart.
func WeekLabel(weekStart time.Time) string {
	weekEnd := weekStart.AddDate(0, 0, 6)
	return fmt.Sprintf("Week: %s → %s", weekStart.Format(DateLayout), weekEnd.Format(DateLayout))
}

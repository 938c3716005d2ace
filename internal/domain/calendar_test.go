package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotKey_Validate(t *testing.T) {
	assert.NoError(t, SlotKey{Day: 0, Time: "08:00"}.Validate())
	assert.NoError(t, SlotKey{Day: 6, Time: "20:00"}.Validate())

	assert.ErrorIs(t, SlotKey{Day: 7, Time: "08:00"}.Validate(), ErrInvalidSlot)
	assert.ErrorIs(t, SlotKey{Day: -1, Time: "08:00"}.Validate(), ErrInvalidSlot)
	assert.ErrorIs(t, SlotKey{Day: 0, Time: "08:30"}.Validate(), ErrInvalidSlot)
	assert.ErrorIs(t, SlotKey{Day: 0, Time: "8:00"}.Validate(), ErrInvalidSlot)
}

func TestSlotKey_RoundTrip(t *testing.T) {
	key := SlotKey{Day: 3, Time: "14:00"}
	parsed, err := ParseSlotKey(key.String())
	require.NoError(t, err)
	assert.Equal(t, key, parsed)
}

func TestCalendar_LastWriteWins(t *testing.T) {
	c := NewCalendar()
	key := SlotKey{Day: 1, Time: "09:00"}

	c.Set(key, SlotValue{Kind: SlotFreeform, Label: "first"})
	c.Set(key, SlotValue{Kind: SlotFreeform, Label: "second"})

	v, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, "second", v.Label)
	assert.Len(t, c.Slots, 1)
}

func TestCalendar_ExportOrdered(t *testing.T) {
	c := NewCalendar()
	c.Set(SlotKey{Day: 2, Time: "10:00"}, SlotValue{Kind: SlotFreeform, Label: "late"})
	c.Set(SlotKey{Day: 0, Time: "09:00"}, SlotValue{Kind: SlotFreeform, Label: "early"})
	c.Set(SlotKey{Day: 0, Time: "08:00"}, SlotValue{Kind: SlotFreeform, Label: "earliest"})

	out := c.Export()
	require.Len(t, out, 3)
	assert.Equal(t, "earliest", out[0].Text)
	assert.Equal(t, "Monday", out[0].Day)
	assert.Equal(t, "early", out[1].Text)
	assert.Equal(t, "late", out[2].Text)
	assert.Equal(t, "Wednesday", out[2].Day)
}

func TestStartOfWeek(t *testing.T) {
	// 2026-08-26 is a Wednesday.
	wed := time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)
	monday := StartOfWeek(wed)
	assert.Equal(t, time.Monday, monday.Weekday())
	assert.Equal(t, "2026-08-24", monday.Format(DateLayout))

	// A Monday maps to itself at midnight.
	assert.Equal(t, monday, StartOfWeek(monday.Add(5*time.Hour)))

	// Sunday belongs to the week that started six days earlier.
	sun := time.Date(2026, 8, 30, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-24", StartOfWeek(sun).Format(DateLayout))
}

func TestWeekLabel(t *testing.T) {
	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Week: 2026-08-24 → 2026-08-30", WeekLabel(monday))
}

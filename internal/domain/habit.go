package domain

// DateLayout is the storage format for habit entry dates.
const DateLayout = "2006-01-02"

// HabitEntry is one logged study session in the append-only habit log.
// Entries are never mutated or deleted; insertion order is preserved in
// storage. Hours is accepted without range validation, the caller is
// expected to bound it.
type HabitEntry struct {
	ID    string  `json:"id"`
	Date  string  `json:"date"` // YYYY-MM-DD, capture date
	Task  string  `json:"task"`
	Hours float64 `json:"hours"`
}

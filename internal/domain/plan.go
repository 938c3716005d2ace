package domain

// StudySession is one fixed one-hour unit of a generated study plan,
// addressable by its ID within the owning plan.
type StudySession struct {
	ID            int    `json:"session_id"`
	Task          string `json:"task"`
	DurationHours int    `json:"duration_hours"`
	Focus         string `json:"focus"`
	Notes         string `json:"notes"`
}

// Deadline is a named date attached to a plan, rendered on matching
// calendar days.
type Deadline struct {
	Name string `json:"name"`
	Date string `json:"date"` // YYYY-MM-DD
}

// Plan is the full generated schedule for one planning cycle: the raw
// model text kept for display, the structured sessions derived from it,
// and the completion state. Exactly one plan is live at a time;
// regenerating replaces the whole document.
type Plan struct {
	Text      string         `json:"plan"`
	Sessions  []StudySession `json:"sessions"`
	Deadlines []Deadline     `json:"deadlines"`
	Completed []int          `json:"completed_sessions"`
	Next      *int           `json:"next_session"`
}

// Session returns the session with the given ID, or nil if absent.
func (p *Plan) Session(id int) *StudySession {
	for i := range p.Sessions {
		if p.Sessions[i].ID == id {
			return &p.Sessions[i]
		}
	}
	return nil
}

// IsCompleted reports whether the session with the given ID has been
// marked completed.
func (p *Plan) IsCompleted(id int) bool {
	for _, c := range p.Completed {
		if c == id {
			return true
		}
	}
	return false
}

// FirstPending returns the earliest session, in declared order, that is
// not yet completed, or nil when every session is done.
func (p *Plan) FirstPending() *StudySession {
	for i := range p.Sessions {
		if !p.IsCompleted(p.Sessions[i].ID) {
			return &p.Sessions[i]
		}
	}
	return nil
}

// Finished reports whether every session in the plan is completed.
func (p *Plan) Finished() bool {
	return p.FirstPending() == nil
}

// CompleteNext marks the first pending session completed and advances
// Next to the following pending session, or nil when none remain.
// Returns the session that was completed. When the plan is already
// finished it returns ErrAlreadyCompleted and leaves the plan unchanged.
func (p *Plan) CompleteNext() (*StudySession, error) {
	s := p.FirstPending()
	if s == nil {
		return nil, ErrAlreadyCompleted
	}
	p.Completed = append(p.Completed, s.ID)
	p.Advance()
	return s, nil
}

// Advance recomputes Next from the completion set: the ID of the first
// pending session, or nil when the plan is finished.
func (p *Plan) Advance() {
	next := p.FirstPending()
	if next == nil {
		p.Next = nil
		return
	}
	id := next.ID
	p.Next = &id
}

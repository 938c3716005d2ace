package domain

import "errors"

var (
	// ErrNoTasks indicates a plan was requested with an empty task list.
	ErrNoTasks = errors.New("at least one task is required")

	// ErrInvalidHours indicates a non-positive hour budget was supplied.
	ErrInvalidHours = errors.New("available hours must be positive")

	// ErrNoPlan indicates no study plan has been generated yet.
	ErrNoPlan = errors.New("no study plan exists")

	// ErrAlreadyCompleted indicates a completion attempt on a plan whose
	// sessions are all done. Non-fatal: callers render it as a no-op
	// message.
	ErrAlreadyCompleted = errors.New("all sessions are already completed")

	// ErrInvalidSlot indicates a calendar coordinate outside the weekly
	// grid.
	ErrInvalidSlot = errors.New("invalid calendar slot")
)

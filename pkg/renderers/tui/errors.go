package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoDriver is returned when a session has no prompt driver.
	ErrNoDriver = errors.New("tui: prompt driver is nil")
	// ErrUnanswerable is returned by strict fills when a field can never
	// satisfy its schema, such as a checkbox with no options.
	ErrUnanswerable = errors.New("tui: field cannot be answered")
)

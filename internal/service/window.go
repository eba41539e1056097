package service

import "time"

// WindowState is the position of an instant relative to a schedule window
type WindowState int

const (
	WindowNotStarted WindowState = iota
	WindowActive
	WindowExpired
)

func (s WindowState) String() string {
	switch s {
	case WindowNotStarted:
		return "NOT_STARTED"
	case WindowActive:
		return "ACTIVE"
	case WindowExpired:
		return "EXPIRED"
	default:
		return "UNKNOWN"
	}
}

// EvaluateWindow compares now with [startAt, endAt] in UTC. Both bounds are
// inclusive and a nil bound is open.
func EvaluateWindow(startAt, endAt *time.Time, now time.Time) WindowState {
	now = now.UTC()
	if startAt != nil && now.Before(startAt.UTC()) {
		return WindowNotStarted
	}
	if endAt != nil && now.After(endAt.UTC()) {
		return WindowExpired
	}
	return WindowActive
}

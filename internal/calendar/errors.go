package calendar

import "errors"

var (
	// ErrInvalidEvent is returned by Emit when the event has no start time.
	ErrInvalidEvent = errors.New("event has no start time")
)

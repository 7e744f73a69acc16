package model

import "time"

// EventDetection is a date/time-bearing event extracted from one chat
// message. Start is truncated to the minute and End is always exactly one
// hour after Start: the extractor does not parse explicit end times.
type EventDetection struct {
	Start       time.Time
	End         time.Time
	Summary     string // short human title, never empty
	Description string // original message truncated to 500 characters
}

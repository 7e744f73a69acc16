package ics

import (
	"errors"
	"fmt"
	"os"

	ical "github.com/arran4/golang-ical"
)

// ReadFile parses a single-event calendar file back into an Event.
// Files with zero or multiple events are rejected.
func ReadFile(path string) (Event, error) {
	var out Event

	f, err := os.Open(path)
	if err != nil {
		return out, fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer f.Close()

	cal, err := ical.ParseCalendar(f)
	if err != nil {
		return out, fmt.Errorf("failed to parse calendar file: %w", err)
	}

	events := cal.Events()
	if len(events) != 1 {
		return out, fmt.Errorf("expected exactly one event, found %d", len(events))
	}
	ve := events[0]

	uidProp := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uidProp == nil || uidProp.Value == "" {
		return out, errors.New("event is missing a UID")
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return out, fmt.Errorf("failed to read event start: %w", err)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return out, fmt.Errorf("failed to read event end: %w", err)
	}

	out.Start = start
	out.End = end
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		out.Description = p.Value
	}

	return out, nil
}

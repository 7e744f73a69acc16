package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser converts relative date terms to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string,
// e.g. "Europe/Berlin". An empty string means the system local zone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" {
		return &Parser{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Resolve converts a relative date term to an absolute time.Time, using
// baseTime as the reference point. The clock time of baseTime is preserved,
// so "tomorrow" resolved at 15:30 lands on the next day at 15:30; callers
// overlay an explicit time-of-day afterwards when one was mentioned.
func (p *Parser) Resolve(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))
	base := baseTime.In(p.location)

	switch relative {
	case "today":
		return base, nil
	case "tomorrow":
		return base.AddDate(0, 0, 1), nil
	case "next week":
		return base.AddDate(0, 0, 7), nil
	case "next month":
		return base.AddDate(0, 1, 0), nil
	}

	if name, ok := strings.CutPrefix(relative, "next "); ok {
		return p.NextWeekday(name, base)
	}

	// A bare weekday name resolves to its next upcoming occurrence.
	if _, ok := weekdays[relative]; ok {
		return p.NextWeekday(relative, base)
	}

	return base, fmt.Errorf("unknown relative date term: %q", relative)
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// NextWeekday returns the next occurrence of the named weekday strictly
// after baseTime's day, preserving baseTime's clock time.
func (p *Parser) NextWeekday(name string, baseTime time.Time) (time.Time, error) {
	target, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", name)
	}

	base := baseTime.In(p.location)
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return base.AddDate(0, 0, daysUntil), nil
}

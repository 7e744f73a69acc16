package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"conversation-intent-toolkit/internal/model"
)

const (
	descriptionMaxLen = 500
	defaultDuration   = time.Hour
	// fuzzyTolerance rejects whole-text parses that landed on "now" without
	// extracting any real signal.
	fuzzyTolerance = time.Minute
)

// relativeTerms are resolved against the whole text, not just the matched
// token, and take priority over literal date parsing.
var relativeTerms = []string{"today", "tomorrow", "next week", "next month"}

// Extract converts text into a concrete event. It tries a whole-text
// natural-language parse first and falls back to token scanning only when
// that stage explicitly yields nothing.
func (uc *implUseCase) Extract(ctx context.Context, text string) (model.EventDetection, bool) {
	now := uc.now().In(uc.dateMath.Location())

	start, ok := uc.extractFuzzy(ctx, text, now)
	if !ok {
		start, ok = uc.extractFromTokens(ctx, text, now)
	}
	if !ok {
		return model.EventDetection{}, false
	}

	start = time.Date(start.Year(), start.Month(), start.Day(), start.Hour(), start.Minute(), 0, 0, start.Location())

	return model.EventDetection{
		Start:       start,
		End:         start.Add(defaultDuration),
		Summary:     extractSummary(text),
		Description: truncate(text, descriptionMaxLen),
	}, true
}

// extractFuzzy runs the lenient natural-language parser over the whole text.
// A result is accepted only if it differs from now by more than a minute or
// lies in the future; anything closer is treated as the parser defaulting
// with no real signal. A parse that missed an explicit absolute date present
// in the text is also rejected, so the token stage can combine it properly.
func (uc *implUseCase) extractFuzzy(ctx context.Context, text string, now time.Time) (time.Time, bool) {
	r, err := uc.fuzzy.Parse(text, now)
	if err != nil {
		uc.l.Debugf(ctx, "calendar: fuzzy parse failed: %v", err)
		return time.Time{}, false
	}
	if r == nil {
		return time.Time{}, false
	}

	for _, re := range absoluteDatePatterns {
		if m := re.FindString(text); m != "" && !strings.Contains(r.Text, m) {
			return time.Time{}, false
		}
	}

	diff := r.Time.Sub(now)
	if diff < 0 {
		diff = -diff
	}
	if diff <= fuzzyTolerance && !r.Time.After(now) {
		return time.Time{}, false
	}

	return overlayClock(text, r.Time), true
}

// overlayClock replaces the time-of-day of t with an explicitly written
// clock token from the text, when one exists. It keeps minute-level mentions
// like "2 PM" exact instead of inheriting minutes from the reference time.
func overlayClock(text string, t time.Time) time.Time {
	for _, re := range clockOverlayPatterns {
		tok := re.FindString(text)
		if tok == "" {
			continue
		}
		clock, err := parseTimeToken(tok)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), clock.Hour(), clock.Minute(), 0, 0, t.Location())
	}
	return t
}

type tokenKind int

const (
	kindDate tokenKind = iota
	kindTime
)

type token struct {
	offset int
	text   string
	kind   tokenKind
}

// extractFromTokens scans the text for date and time tokens, earliest first,
// and combines the first date and the first time that parse. A date is
// required; the time of day defaults to the current clock.
func (uc *implUseCase) extractFromTokens(ctx context.Context, text string, now time.Time) (time.Time, bool) {
	var tokens []token
	for _, re := range datePatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			tokens = append(tokens, token{offset: loc[0], text: text[loc[0]:loc[1]], kind: kindDate})
		}
	}
	for _, re := range timePatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			tokens = append(tokens, token{offset: loc[0], text: text[loc[0]:loc[1]], kind: kindTime})
		}
	}
	if len(tokens) == 0 {
		return time.Time{}, false
	}

	// First mention wins.
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].offset < tokens[j].offset })

	var (
		date     time.Time
		haveDate bool
		clock    time.Time
		haveTime bool
	)

	for _, tok := range tokens {
		switch tok.kind {
		case kindDate:
			if haveDate {
				continue
			}
			d, err := uc.resolveDateToken(text, tok.text, now)
			if err != nil {
				uc.l.Debugf(ctx, "calendar: unusable date token %q: %v", tok.text, err)
				continue
			}
			date, haveDate = d, true
		case kindTime:
			if haveTime {
				continue
			}
			t, err := parseTimeToken(tok.text)
			if err != nil {
				// Time-of-day words land here; they signal detection but
				// carry no parseable clock value.
				continue
			}
			clock, haveTime = t, true
		}
	}

	if !haveDate {
		return time.Time{}, false
	}

	hour, minute := date.Hour(), date.Minute()
	if haveTime {
		hour, minute = clock.Hour(), clock.Minute()
	}

	loc := uc.dateMath.Location()
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc), true
}

// resolveDateToken turns one matched date token into an absolute date.
// Relative terms mentioned anywhere in the text win over the literal token;
// literal parsing is retried with the current year appended when the token
// alone is ambiguous (e.g. "Jan 15").
func (uc *implUseCase) resolveDateToken(text, tok string, now time.Time) (time.Time, error) {
	lower := strings.ToLower(text)
	for _, term := range relativeTerms {
		if strings.Contains(lower, term) {
			return uc.dateMath.Resolve(term, now)
		}
	}

	if d, err := uc.dateMath.Resolve(tok, now); err == nil {
		return d, nil
	}

	loc := uc.dateMath.Location()
	if d, err := dateparse.ParseIn(tok, loc); err == nil {
		return d, nil
	}
	d, err := dateparse.ParseIn(fmt.Sprintf("%s, %d", strings.TrimRight(tok, ","), now.Year()), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable date token %q: %w", tok, err)
	}
	return d, nil
}

var timeLayouts = []string{"3:04 PM", "3:04PM", "3:04:05 PM", "3 PM", "3PM", "15:04:05", "15:04"}

// parseTimeToken parses clock tokens like "14:30", "2:30 PM" or "2:30pm".
func parseTimeToken(tok string) (time.Time, error) {
	normalized := strings.ToUpper(strings.Join(strings.Fields(tok), " "))
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable time token %q", tok)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

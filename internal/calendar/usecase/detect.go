package usecase

import (
	"regexp"
	"strings"
)

// The detection rules are data: pattern and keyword tables matched
// independently, so they can be tested and extended without touching the
// matching code.

var datePatterns = []*regexp.Regexp{
	// ISO dates: 2024-01-15, 2024/01/15
	regexp.MustCompile(`\b\d{4}[-/]\d{1,2}[-/]\d{1,2}\b`),
	// Slash dates: 01/15/2024, 15/1/24. US and European ordering share this
	// pattern; disambiguation is deferred to the date parser's default.
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
	// Month day: January 15, Jan 15, Jan 15th
	regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{1,2}(?:st|nd|rd|th)?\b`),
	// Full month with year: January 15, 2024
	regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}\b`),
	// Relative dates: today, tomorrow, next week, next Monday
	regexp.MustCompile(`(?i)\b(?:today|tomorrow|next\s+(?:week|month|monday|tuesday|wednesday|thursday|friday|saturday|sunday))\b`),
	// Bare weekday names
	regexp.MustCompile(`(?i)\b(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
}

var timePatterns = []*regexp.Regexp{
	// 24-hour: 14:30, 14:30:00
	regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?\b`),
	// 12-hour: 2:30 PM, 2:30pm
	regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\s*(?:am|pm)\b`),
	// Time-of-day words
	regexp.MustCompile(`(?i)\b(?:morning|afternoon|evening|noon|midnight)\b`),
}

// absoluteDatePatterns is the subset of datePatterns naming a concrete
// calendar date; used to validate whole-text parses in the extract stage.
var absoluteDatePatterns = datePatterns[:4]

// clockOverlayPatterns find explicitly written clock values, most specific
// first. The bare meridiem form ("2 PM") is not a detection trigger on its
// own, only a refinement of an already-accepted parse.
var clockOverlayPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\s*(?:am|pm)\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s*(?:am|pm)\b`),
	regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?\b`),
}

var comboPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:at|@)\s+\d{1,2}:\d{2}`),
	regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\s+(?:am|pm)\b`),
}

var schedulingKeywords = []string{
	"meeting", "appointment", "schedule", "calendar", "event",
	"tomorrow", "today", "next week", "next month",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// timeIndicators back the keyword fallback. They are checked anywhere in the
// text, not near the keyword, trading false positives for recall.
var timeIndicators = []string{"at", "@", ":", "am", "pm", "morning", "afternoon", "evening"}

// Detect reports whether text contains a date/time mention.
func (uc *implUseCase) Detect(text string) bool {
	for _, re := range datePatterns {
		if re.MatchString(text) {
			return true
		}
	}
	for _, re := range timePatterns {
		if re.MatchString(text) {
			return true
		}
	}
	for _, re := range comboPatterns {
		if re.MatchString(text) {
			return true
		}
	}

	lower := strings.ToLower(text)
	for _, keyword := range schedulingKeywords {
		if !strings.Contains(lower, keyword) {
			continue
		}
		for _, indicator := range timeIndicators {
			if strings.Contains(lower, indicator) {
				return true
			}
		}
		return false
	}

	return false
}

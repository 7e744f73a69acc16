package usecase

import (
	"regexp"
	"strings"
)

const (
	summaryMaxLen  = 50
	defaultSummary = "Calendar Event"
)

// summaryPatterns capture the subject of common scheduling phrasings;
// the first pattern with a match wins.
var summaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)meeting\s+(?:about|regarding|for|with)\s+([^.?!]+)`),
	regexp.MustCompile(`(?i)call\s+(?:with|about)\s+([^.?!]+)`),
	regexp.MustCompile(`(?i)appointment\s+(?:with|for)\s+([^.?!]+)`),
	regexp.MustCompile(`(?i)event\s+(?:called|titled)\s+([^.?!]+)`),
}

var sentenceSplit = regexp.MustCompile(`[.!?]`)

// extractSummary derives a short event title from the message text.
func extractSummary(text string) string {
	for _, re := range summaryPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	// Fall back to the first sentence, capped at 50 characters.
	sentences := sentenceSplit.Split(text, -1)
	if len(sentences) > 0 {
		summary := strings.TrimSpace(sentences[0])
		if summary != "" {
			if r := []rune(summary); len(r) > summaryMaxLen {
				summary = string(r[:summaryMaxLen]) + "..."
			}
			return summary
		}
	}

	return defaultSummary
}

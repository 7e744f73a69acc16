package usecase

import (
	"regexp"
	"strings"
)

// capPhrase matches one or more consecutive title-cased words. The keyword
// alternations around it are case-insensitive, the capture is not, so only
// proper-noun-like phrases qualify.
const capPhrase = `([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`

// locationPatterns are tried most specific first; within a pattern, the
// first acceptable match in text order wins.
var locationPatterns = []*regexp.Regexp{
	// "going to Paris", "planning to visit in Tokyo"
	regexp.MustCompile(`(?:(?i:going|traveling|travelling|visiting|flying|driving|heading|planning\s+to\s+visit))\s+(?i:to|in)\s+` + capPhrase),
	// "hotel in Paris", "restaurant near Tokyo"
	regexp.MustCompile(`(?i:hotel|restaurant|airbnb|accommodation|stay|place)\s+(?i:in|at|near|around)\s+` + capPhrase),
	// "Paris hotel", "Tokyo restaurant"
	regexp.MustCompile(capPhrase + `\s+(?i:hotel|restaurant|airbnb|city|place|destination|area)`),
	// "in Paris", "near San Francisco"
	regexp.MustCompile(`\b(?i:in|at|near|around)\s+` + capPhrase + `\b`),
}

// stopwords are phrases that match the capture shape but never name a place.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "to": {}, "in": {}, "at": {}, "near": {},
	"around": {}, "this": {}, "that": {}, "there": {}, "here": {},
	"where": {}, "what": {}, "when": {}, "how": {}, "why": {},
}

// ExtractLocation pulls a proper-noun place name out of text. False means
// no template matched or every candidate was rejected as a stopword.
func (uc *implUseCase) ExtractLocation(text string) (string, bool) {
	for _, re := range locationPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			location := strings.TrimSpace(m[1])
			if acceptableLocation(location) {
				return location, true
			}
		}
	}
	return "", false
}

func acceptableLocation(location string) bool {
	if len([]rune(location)) <= 2 {
		return false
	}
	lower := strings.ToLower(location)
	if _, bad := stopwords[lower]; bad {
		return false
	}
	for _, article := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(lower, article) {
			return false
		}
	}
	return true
}

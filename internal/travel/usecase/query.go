package usecase

import (
	"fmt"
	"strings"

	"conversation-intent-toolkit/internal/model"
)

// BuildEnhancedQuery rewrites text into a search-instruction query for the
// runner. With no applicable clause the original text passes through
// unchanged, though detection preconditions make that unreachable in
// practice.
func (uc *implUseCase) BuildEnhancedQuery(text, location string, searchType model.SearchType) string {
	var instructions []string

	if searchType == model.SearchTypeAccommodation || searchType == model.SearchTypeBoth {
		if location != "" {
			instructions = append(instructions, fmt.Sprintf("Search for cheap hotels and Airbnbs near %s", location))
		} else {
			instructions = append(instructions, "Search for cheap hotels and Airbnbs in the mentioned area")
		}
	}

	if searchType == model.SearchTypeRecommendations || searchType == model.SearchTypeBoth {
		if location != "" {
			instructions = append(instructions, fmt.Sprintf("Search for travel location and restaurant recommendations in %s", location))
		} else {
			instructions = append(instructions, "Search for travel location and restaurant recommendations in the mentioned area")
		}
	}

	if len(instructions) == 0 {
		return text
	}

	joined := strings.Join(instructions, ". ") + "."
	return fmt.Sprintf("%s\n\nPlease perform web searches to find: %s Provide specific recommendations with prices and locations when available.", text, joined)
}

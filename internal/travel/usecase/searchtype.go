package usecase

import (
	"strings"

	"conversation-intent-toolkit/internal/model"
)

// DetermineSearchType classifies what the user is looking for. The default
// is both: travel can be detected without naming a specific preference.
func (uc *implUseCase) DetermineSearchType(text string) model.SearchType {
	lower := strings.ToLower(text)

	hasAccommodation := containsAny(lower, accommodationKeywords)
	hasRestaurant := containsAny(lower, restaurantKeywords)
	hasLocation := containsAny(lower, locationKeywords)

	switch {
	case hasAccommodation && (hasRestaurant || hasLocation):
		return model.SearchTypeBoth
	case hasAccommodation:
		return model.SearchTypeAccommodation
	case hasRestaurant || hasLocation:
		return model.SearchTypeRecommendations
	default:
		return model.SearchTypeBoth
	}
}

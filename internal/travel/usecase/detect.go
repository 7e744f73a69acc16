package usecase

import (
	"strings"
)

// The classification rules are data: four keyword categories matched by
// case-insensitive substring membership, combined by a fixed decision order.

var travelKeywords = []string{
	"travel", "trip", "vacation", "visit", "going to", "planning to visit",
	"traveling to", "visiting", "travelling", "holiday", "journey",
	"destination", "going", "flying to", "driving to", "heading to",
}

var accommodationKeywords = []string{
	"hotel", "airbnb", "air bnb", "accommodation", "stay", "lodging",
	"place to stay", "where to stay", "book a room", "reservation",
	"cheap hotel", "budget hotel", "affordable hotel", "hotel near",
	"airbnb near", "stay near",
}

var restaurantKeywords = []string{
	"restaurant", "dining", "food", "eat", "cuisine", "cafe", "café",
	"where to eat", "best restaurant", "good food", "local food",
	"dining recommendation", "food recommendation",
}

var locationKeywords = []string{
	"location", "place", "attraction", "sightseeing", "things to do",
	"what to see", "where to go", "recommendation", "suggest",
	"must see", "must visit", "popular", "famous",
}

func containsAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// Detect reports whether text carries travel intent. Accommodation mentions
// imply travel on their own; restaurant mentions only count in a travel
// context.
func (uc *implUseCase) Detect(text string) bool {
	lower := strings.ToLower(text)

	hasTravel := containsAny(lower, travelKeywords)
	hasAccommodation := containsAny(lower, accommodationKeywords)
	hasRestaurant := containsAny(lower, restaurantKeywords)
	hasLocation := containsAny(lower, locationKeywords)

	if hasTravel && (hasAccommodation || hasRestaurant || hasLocation) {
		return true
	}
	if hasAccommodation {
		return true
	}
	if hasRestaurant && hasTravel {
		return true
	}

	return false
}

package model

// SearchType categorizes what a travel-related message is asking for.
type SearchType string

const (
	SearchTypeAccommodation   SearchType = "accommodation"
	SearchTypeRecommendations SearchType = "recommendations"
	SearchTypeBoth            SearchType = "both"
)

// TravelIntent is the structured result of travel detection on one message.
type TravelIntent struct {
	// Location is the extracted place name; empty when none was determinable.
	Location string
	// SearchType says whether the user wants accommodation, recommendations,
	// or both.
	SearchType SearchType
	// EnhancedQuery is the original text augmented with explicit search
	// instructions, ready to forward to a search-capable agent.
	EnhancedQuery string
}

package travel

import (
	"context"

	"conversation-intent-toolkit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Detect reports whether text carries travel intent.
	Detect(text string) bool
	// ExtractLocation pulls a proper-noun place name out of text.
	ExtractLocation(text string) (string, bool)
	// DetermineSearchType classifies what the user is looking for.
	DetermineSearchType(text string) model.SearchType
	// BuildEnhancedQuery rewrites text into a search-instruction query.
	BuildEnhancedQuery(text, location string, searchType model.SearchType) string
	// Process runs the full pipeline; false means no travel intent.
	Process(ctx context.Context, text string) (model.TravelIntent, bool)
}

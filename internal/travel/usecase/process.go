package usecase

import (
	"context"

	"conversation-intent-toolkit/internal/model"
)

// Process runs the full pipeline; false means no travel intent. A missing
// location is not a failure, the enhanced query falls back to a generic
// area phrase.
func (uc *implUseCase) Process(ctx context.Context, text string) (model.TravelIntent, bool) {
	if !uc.Detect(text) {
		return model.TravelIntent{}, false
	}

	location, _ := uc.ExtractLocation(text)
	searchType := uc.DetermineSearchType(text)

	intent := model.TravelIntent{
		Location:      location,
		SearchType:    searchType,
		EnhancedQuery: uc.BuildEnhancedQuery(text, location, searchType),
	}

	uc.l.Infof(ctx, "travel: detected intent location=%q search_type=%s", location, searchType)
	return intent, true
}

package chat

import (
	"conversation-intent-toolkit/internal/model"
)

// ProcessInput is one inbound chat message.
type ProcessInput struct {
	Text string
}

// ProcessOutput aggregates what one message produced. CalendarFile is empty
// when no event was detected and Travel is nil when no travel intent was
// detected; neither is an error.
type ProcessOutput struct {
	Reply        string
	CalendarFile string
	Travel       *model.TravelIntent
}

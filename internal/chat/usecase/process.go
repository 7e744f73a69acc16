package usecase

import (
	"context"
	"strings"

	"conversation-intent-toolkit/internal/chat"
	"conversation-intent-toolkit/internal/model"
)

// ProcessMessage runs both extractors over the message, then forwards the
// travel-enhanced query (or the raw text) to the runner under the
// conversation's session. Extractor absence is normal; only runner failures
// surface as errors.
func (uc *implUseCase) ProcessMessage(ctx context.Context, sc model.Scope, input chat.ProcessInput) (chat.ProcessOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return chat.ProcessOutput{}, chat.ErrEmptyQuery
	}

	var out chat.ProcessOutput

	if path, ok := uc.calendarUC.Process(ctx, text); ok {
		out.CalendarFile = path
	}

	query := text
	if intent, ok := uc.travelUC.Process(ctx, text); ok {
		out.Travel = &intent
		query = intent.EnhancedQuery
	}

	sess := uc.sessions.GetOrCreate(sc.ConversationID)

	reply, err := uc.runner.Query(ctx, query, sess.ID)
	if err != nil {
		uc.l.Errorf(ctx, "chat: runner query failed for conversation %s: %v", sc.ConversationID, err)
		return chat.ProcessOutput{}, err
	}

	out.Reply = reply
	return out, nil
}

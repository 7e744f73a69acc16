package chat

import (
	"context"

	"conversation-intent-toolkit/internal/model"
)

// Runner executes enriched queries against the external conversational
// agent and returns its textual reply.
type Runner interface {
	Query(ctx context.Context, query string, sessionID string) (string, error)
}

// UseCase orchestrates both extractors over one chat message and forwards
// the resulting query to the runner.
type UseCase interface {
	ProcessMessage(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)
}

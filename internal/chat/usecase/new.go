package usecase

import (
	"conversation-intent-toolkit/internal/calendar"
	"conversation-intent-toolkit/internal/chat"
	"conversation-intent-toolkit/internal/session"
	"conversation-intent-toolkit/internal/travel"
	pkgLog "conversation-intent-toolkit/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	calendarUC calendar.UseCase
	travelUC   travel.UseCase
	sessions   *session.Store
	runner     chat.Runner
}

// New creates the chat orchestration UseCase.
func New(
	l pkgLog.Logger,
	calendarUC calendar.UseCase,
	travelUC travel.UseCase,
	sessions *session.Store,
	runner chat.Runner,
) *implUseCase {
	return &implUseCase{
		l:          l,
		calendarUC: calendarUC,
		travelUC:   travelUC,
		sessions:   sessions,
		runner:     runner,
	}
}

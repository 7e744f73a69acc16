package usecase

import (
	pkgLog "conversation-intent-toolkit/pkg/log"
)

type implUseCase struct {
	l pkgLog.Logger
}

// New creates a travel extractor UseCase. The extractor is stateless and
// safe for concurrent use.
func New(l pkgLog.Logger) *implUseCase {
	return &implUseCase{l: l}
}

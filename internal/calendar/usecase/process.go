package usecase

import (
	"context"
)

// Process runs the full pipeline over one message: detect date/time
// mentions, extract an event, emit the calendar file. Every failure mode is
// a normal absent result; errors are logged here and never propagated.
func (uc *implUseCase) Process(ctx context.Context, text string) (string, bool) {
	if !uc.Detect(text) {
		return "", false
	}

	det, ok := uc.Extract(ctx, text)
	if !ok {
		return "", false
	}

	path, err := uc.Emit(ctx, det, "")
	if err != nil {
		uc.l.Errorf(ctx, "calendar: failed to emit event %q: %v", det.Summary, err)
		return "", false
	}

	uc.l.Infof(ctx, "calendar: wrote %s for event %q at %s", path, det.Summary, det.Start)
	return path, true
}

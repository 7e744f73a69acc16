package calendar

import (
	"context"

	"conversation-intent-toolkit/internal/model"
)

// UseCase is the calendar extraction pipeline: detect date/time mentions in
// free text, extract a concrete event, and emit a one-event .ics file.
//
// Detect, Extract and Process never fail: absence of a result is a normal
// outcome expressed through the boolean, and internal parse or I/O errors
// are logged, not propagated.
type UseCase interface {
	// Detect reports whether text contains a date/time mention.
	Detect(text string) bool

	// Extract converts text into a concrete event. The boolean is false when
	// no usable date/time could be resolved.
	Extract(ctx context.Context, text string) (model.EventDetection, bool)

	// Emit writes det to a calendar file and returns the written path.
	// When filename is empty it is derived from the summary and start time.
	Emit(ctx context.Context, det model.EventDetection, filename string) (string, error)

	// Process runs the full pipeline and returns the written file path.
	Process(ctx context.Context, text string) (string, bool)
}

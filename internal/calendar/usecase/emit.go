package usecase

import (
	"context"

	"conversation-intent-toolkit/internal/calendar"
	"conversation-intent-toolkit/internal/model"
	"conversation-intent-toolkit/pkg/gcalendar"
	"conversation-intent-toolkit/pkg/ics"
)

// Emit writes det to a one-event .ics file and returns the written path.
func (uc *implUseCase) Emit(ctx context.Context, det model.EventDetection, filename string) (string, error) {
	if det.Start.IsZero() {
		return "", calendar.ErrInvalidEvent
	}

	path, err := uc.writer.Write(ics.Event{
		Start:       det.Start,
		End:         det.End,
		Summary:     det.Summary,
		Description: det.Description,
	}, filename)
	if err != nil {
		return "", err
	}

	uc.mirrorToGoogleCalendar(ctx, det)

	return path, nil
}

// mirrorToGoogleCalendar optionally inserts the event into Google Calendar.
// Failures are logged and swallowed: the .ics file is the primary artifact.
func (uc *implUseCase) mirrorToGoogleCalendar(ctx context.Context, det model.EventDetection) {
	if uc.calendar == nil {
		return
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     det.Summary,
		Description: det.Description,
		StartTime:   det.Start,
		EndTime:     det.End,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "calendar: google mirror failed for %q (non-fatal): %v", det.Summary, err)
		return
	}

	uc.l.Infof(ctx, "calendar: mirrored %q to google calendar: %s", det.Summary, event.HtmlLink)
}

package usecase

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"conversation-intent-toolkit/pkg/datemath"
	"conversation-intent-toolkit/pkg/gcalendar"
	"conversation-intent-toolkit/pkg/ics"
	pkgLog "conversation-intent-toolkit/pkg/log"
)

// Config is the dependency bag for the calendar extractor.
type Config struct {
	// OutputDir is where generated .ics files land; created on first emit.
	OutputDir string
	// Timezone is the IANA zone all extracted times are resolved in.
	// Empty means the system local zone.
	Timezone string
	// Calendar is an optional Google Calendar mirror for emitted events.
	Calendar *gcalendar.Client
	// CalendarID is the mirror target; defaults to "primary".
	CalendarID string
	// Now overrides the clock, for deterministic extraction in tests.
	Now func() time.Time
}

type implUseCase struct {
	l          pkgLog.Logger
	fuzzy      *when.Parser
	dateMath   *datemath.Parser
	writer     *ics.Writer
	calendar   *gcalendar.Client
	calendarID string
	timezone   string
	now        func() time.Time
}

// New creates a calendar extractor UseCase.
func New(l pkgLog.Logger, cfg Config) (*implUseCase, error) {
	dateMath, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	fuzzy := when.New(nil)
	fuzzy.Add(en.All...)
	fuzzy.Add(common.All...)

	calendarID := cfg.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	return &implUseCase{
		l:          l,
		fuzzy:      fuzzy,
		dateMath:   dateMath,
		writer:     ics.NewWriter(cfg.OutputDir, now),
		calendar:   cfg.Calendar,
		calendarID: calendarID,
		timezone:   cfg.Timezone,
		now:        now,
	}, nil
}

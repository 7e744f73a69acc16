package ics

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const (
	// Extension is the fixed calendar file extension.
	Extension = ".ics"

	prodID          = "-//Conversation Intent Toolkit//EN"
	filenameMaxLen  = 30
	filenameTimeFmt = "20060102_150405"
)

// Event is the single calendar event serialized into a file.
type Event struct {
	Start       time.Time
	End         time.Time
	Summary     string
	Description string
}

// Writer serializes events into one-event iCalendar files under a fixed
// output directory.
type Writer struct {
	outputDir string
	now       func() time.Time
}

// NewWriter creates a Writer targeting outputDir. The directory is created
// lazily on the first write. A nil now falls back to time.Now.
func NewWriter(outputDir string, now func() time.Time) *Writer {
	if now == nil {
		now = time.Now
	}
	return &Writer{outputDir: outputDir, now: now}
}

// Write serializes ev into an .ics file and returns the written path.
// When filename is empty it is derived from the summary and start time.
// Each file carries exactly one VEVENT with a fresh random UID.
func (w *Writer) Write(ev Event, filename string) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %q: %w", w.outputDir, err)
	}

	cal := ical.NewCalendar()
	cal.SetProductId(prodID)
	cal.SetVersion("2.0")

	ve := cal.AddEvent(uuid.NewString())
	ve.SetDtStampTime(w.now())
	ve.SetStartAt(ev.Start)
	ve.SetEndAt(ev.End)
	ve.SetSummary(ev.Summary)
	ve.SetDescription(ev.Description)

	derived := filename == ""
	if derived {
		filename = Filename(ev.Summary, ev.Start)
	}
	if !strings.HasSuffix(filename, Extension) {
		filename += Extension
	}

	path := filepath.Join(w.outputDir, filename)
	if derived {
		// File identity is not part of event identity: emitting the same
		// event again must land in a fresh file, not overwrite.
		base := strings.TrimSuffix(filename, Extension)
		for n := 1; ; n++ {
			if _, err := os.Stat(path); os.IsNotExist(err) {
				break
			}
			path = filepath.Join(w.outputDir, fmt.Sprintf("%s_%d%s", base, n, Extension))
		}
	}
	if err := os.WriteFile(path, []byte(cal.Serialize()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write calendar file %q: %w", path, err)
	}

	return path, nil
}

var (
	unsafeChars = regexp.MustCompile(`[^\w\s-]`)
	runRe       = regexp.MustCompile(`[-\s]+`)
)

// Filename derives a calendar filename from an event summary and start time:
// the summary is stripped of unsafe characters, whitespace/hyphen runs are
// collapsed to a single hyphen, and the result is capped at 30 characters
// before the start timestamp is appended.
func Filename(summary string, start time.Time) string {
	safe := unsafeChars.ReplaceAllString(summary, "")
	safe = runRe.ReplaceAllString(safe, "-")
	safe = strings.Trim(safe, "-")
	if safe == "" {
		safe = "event"
	}
	if r := []rune(safe); len(r) > filenameMaxLen {
		safe = string(r[:filenameMaxLen])
	}
	return fmt.Sprintf("%s_%s%s", safe, start.Format(filenameTimeFmt), Extension)
}

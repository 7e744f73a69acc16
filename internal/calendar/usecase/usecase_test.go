package usecase_test

import (
	"context"
	"testing"
	"time"

	"conversation-intent-toolkit/pkg/ics"
)

func TestDetect(t *testing.T) {
	uc := newTestUseCase(t)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "ISO date",
			text: "Event on 2099-12-25 at 14:00",
			want: true,
		},
		{
			name: "Slash date",
			text: "The deadline is 01/15/2024",
			want: true,
		},
		{
			name: "Month and day",
			text: "See you on Jan 15th",
			want: true,
		},
		{
			name: "Relative date",
			text: "Let's meet tomorrow at 2 PM to discuss the budget",
			want: true,
		},
		{
			name: "Bare weekday",
			text: "Pizza on Friday sounds great",
			want: true,
		},
		{
			name: "Time of day word",
			text: "Call me in the morning",
			want: true,
		},
		{
			name: "Keyword with time indicator",
			text: "the meeting is at 3",
			want: true,
		},
		{
			name: "Keyword without time indicator",
			text: "Let's plan the event sometime",
			want: false,
		},
		{
			name: "Plain question",
			text: "What's the weather like?",
			want: false,
		},
		{
			name: "Empty text",
			text: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := uc.Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	t.Run("Absolute date and time", func(t *testing.T) {
		det, ok := uc.Extract(ctx, "Event on 2099-12-25 at 14:00")
		if !ok {
			t.Fatal("expected an extraction")
		}
		wantStart := time.Date(2099, 12, 25, 14, 0, 0, 0, time.UTC)
		if !det.Start.Equal(wantStart) {
			t.Errorf("start = %v, want %v", det.Start, wantStart)
		}
		if !det.End.Equal(wantStart.Add(time.Hour)) {
			t.Errorf("end = %v, want %v", det.End, wantStart.Add(time.Hour))
		}
	})

	t.Run("Relative date with explicit clock", func(t *testing.T) {
		det, ok := uc.Extract(ctx, "Let's meet tomorrow at 2 PM to discuss the budget")
		if !ok {
			t.Fatal("expected an extraction")
		}
		wantStart := time.Date(2024, 5, 2, 14, 0, 0, 0, time.UTC)
		if !det.Start.Equal(wantStart) {
			t.Errorf("start = %v, want %v", det.Start, wantStart)
		}
		if !det.End.Equal(wantStart.Add(time.Hour)) {
			t.Errorf("end = %v, want %v", det.End, wantStart.Add(time.Hour))
		}
		if det.Summary != "Let's meet tomorrow at 2 PM to discuss the budget" {
			t.Errorf("summary = %q", det.Summary)
		}
	})

	t.Run("Relative date keeps current clock", func(t *testing.T) {
		det, ok := uc.Extract(ctx, "Lunch tomorrow")
		if !ok {
			t.Fatal("expected an extraction")
		}
		wantStart := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)
		if !det.Start.Equal(wantStart) {
			t.Errorf("start = %v, want %v", det.Start, wantStart)
		}
	})

	t.Run("Summary from phrasing template", func(t *testing.T) {
		det, ok := uc.Extract(ctx, "Meeting about quarterly planning on 2099-03-14.")
		if !ok {
			t.Fatal("expected an extraction")
		}
		if det.Summary != "quarterly planning on 2099-03-14" {
			t.Errorf("summary = %q, want %q", det.Summary, "quarterly planning on 2099-03-14")
		}
		if det.Start.Year() != 2099 || det.Start.Month() != time.March || det.Start.Day() != 14 {
			t.Errorf("start date = %v, want 2099-03-14", det.Start)
		}
	})

	t.Run("Long text truncates summary and description", func(t *testing.T) {
		long := "This extremely verbose sentence keeps going well past the summary cap on 2099-06-01"
		det, ok := uc.Extract(ctx, long)
		if !ok {
			t.Fatal("expected an extraction")
		}
		if len([]rune(det.Summary)) != 53 {
			t.Errorf("summary length = %d, want 50 plus ellipsis", len([]rune(det.Summary)))
		}
		if det.Summary[len(det.Summary)-3:] != "..." {
			t.Errorf("summary must end with ellipsis, got %q", det.Summary)
		}
		if det.Description != long {
			t.Errorf("description = %q, want full text", det.Description)
		}
	})

	t.Run("No temporal content", func(t *testing.T) {
		if _, ok := uc.Extract(ctx, "What's the weather like?"); ok {
			t.Error("expected no extraction")
		}
	})
}

func TestProcess(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	t.Run("Emits parseable file", func(t *testing.T) {
		path, ok := uc.Process(ctx, "Event on 2099-12-25 at 14:00")
		if !ok {
			t.Fatal("expected a processed event")
		}

		ev, err := ics.ReadFile(path)
		if err != nil {
			t.Fatalf("emitted file must parse back: %v", err)
		}
		wantStart := time.Date(2099, 12, 25, 14, 0, 0, 0, time.UTC)
		if !ev.Start.Equal(wantStart) {
			t.Errorf("start = %v, want %v", ev.Start, wantStart)
		}
		if !ev.End.Equal(wantStart.Add(time.Hour)) {
			t.Errorf("end = %v, want %v", ev.End, wantStart.Add(time.Hour))
		}
		if ev.Summary != "Event on 2099-12-25 at 14:00" {
			t.Errorf("summary = %q", ev.Summary)
		}
	})

	t.Run("Same text twice lands in distinct files", func(t *testing.T) {
		text := "Standup on 2099-01-02 at 10:00"
		first, ok := uc.Process(ctx, text)
		if !ok {
			t.Fatal("first process failed")
		}
		second, ok := uc.Process(ctx, text)
		if !ok {
			t.Fatal("second process failed")
		}
		if first == second {
			t.Fatalf("expected distinct files, both got %s", first)
		}

		a, err := ics.ReadFile(first)
		if err != nil {
			t.Fatalf("first file must parse back: %v", err)
		}
		b, err := ics.ReadFile(second)
		if err != nil {
			t.Fatalf("second file must parse back: %v", err)
		}
		if !a.Start.Equal(b.Start) || !a.End.Equal(b.End) || a.Summary != b.Summary {
			t.Error("file identity differs but event content must be equivalent")
		}
	})

	t.Run("Non temporal text is skipped", func(t *testing.T) {
		if _, ok := uc.Process(ctx, "What's the weather like?"); ok {
			t.Error("expected no file for non-temporal text")
		}
	})
}

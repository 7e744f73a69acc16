package ics_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"conversation-intent-toolkit/pkg/ics"
)

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	w := ics.NewWriter(dir, func() time.Time { return now })

	ev := ics.Event{
		Start:       time.Date(2099, 12, 25, 14, 0, 0, 0, time.UTC),
		End:         time.Date(2099, 12, 25, 15, 0, 0, 0, time.UTC),
		Summary:     "Budget review",
		Description: "Event on 2099-12-25 at 14:00",
	}

	path, err := w.Write(ev, "")
	if err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	if !strings.HasSuffix(path, ics.Extension) {
		t.Errorf("path must end with %s, got %s", ics.Extension, path)
	}

	got, err := ics.ReadFile(path)
	if err != nil {
		t.Fatalf("round-trip parse failed: %v", err)
	}
	if !got.Start.Equal(ev.Start) {
		t.Errorf("start mismatch: got %v want %v", got.Start, ev.Start)
	}
	if !got.End.Equal(ev.End) {
		t.Errorf("end mismatch: got %v want %v", got.End, ev.End)
	}
	if got.Summary != ev.Summary {
		t.Errorf("summary mismatch: got %q want %q", got.Summary, ev.Summary)
	}
	if got.Description != ev.Description {
		t.Errorf("description mismatch: got %q want %q", got.Description, ev.Description)
	}
}

func TestWriteDistinctFiles(t *testing.T) {
	dir := t.TempDir()
	w := ics.NewWriter(dir, nil)

	ev := ics.Event{
		Start:   time.Date(2099, 1, 2, 10, 0, 0, 0, time.UTC),
		End:     time.Date(2099, 1, 2, 11, 0, 0, 0, time.UTC),
		Summary: "Standup",
	}

	first, err := w.Write(ev, "first")
	if err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	second, err := w.Write(ev, "second")
	if err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct files")
	}

	a, _ := ics.ReadFile(first)
	b, _ := ics.ReadFile(second)
	if !a.Start.Equal(b.Start) || a.Summary != b.Summary {
		t.Errorf("file identity differs but content must be equivalent")
	}
}

func TestWriteDerivedNameCollision(t *testing.T) {
	dir := t.TempDir()
	w := ics.NewWriter(dir, nil)

	ev := ics.Event{
		Start:   time.Date(2099, 1, 2, 10, 0, 0, 0, time.UTC),
		End:     time.Date(2099, 1, 2, 11, 0, 0, 0, time.UTC),
		Summary: "Standup",
	}

	first, err := w.Write(ev, "")
	if err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	second, err := w.Write(ev, "")
	if err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	if first == second {
		t.Fatalf("derived filenames must not collide, both got %s", first)
	}
}

func TestWriteAppendsExtension(t *testing.T) {
	dir := t.TempDir()
	w := ics.NewWriter(dir, nil)

	ev := ics.Event{
		Start:   time.Date(2099, 1, 2, 10, 0, 0, 0, time.UTC),
		End:     time.Date(2099, 1, 2, 11, 0, 0, 0, time.UTC),
		Summary: "Standup",
	}

	path, err := w.Write(ev, "no-extension")
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if filepath.Base(path) != "no-extension.ics" {
		t.Errorf("expected no-extension.ics, got %s", filepath.Base(path))
	}
}

func TestFilename(t *testing.T) {
	start := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		summary string
		want    string
	}{
		{
			name:    "Strips punctuation and collapses runs",
			summary: "Meeting: budget / Q1!!",
			want:    "Meeting-budget-Q1_20240115_143000.ics",
		},
		{
			name:    "Truncates long summaries",
			summary: strings.Repeat("a", 60),
			want:    strings.Repeat("a", 30) + "_20240115_143000.ics",
		},
		{
			name:    "Empty summary falls back",
			summary: "!!!",
			want:    "event_20240115_143000.ics",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ics.Filename(tt.summary, start); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}

package usecase_test

import (
	"context"
	"testing"
	"time"

	"conversation-intent-toolkit/internal/calendar"
	"conversation-intent-toolkit/internal/calendar/usecase"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fixedNow is the deterministic reference time used across extractor tests:
// Wednesday, 2024-05-01 09:30 UTC.
var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func newTestUseCase(t *testing.T) calendar.UseCase {
	t.Helper()
	uc, err := usecase.New(&mockLogger{}, usecase.Config{
		OutputDir: t.TempDir(),
		Timezone:  "UTC",
		Now:       func() time.Time { return fixedNow },
	})
	if err != nil {
		t.Fatalf("failed to build usecase: %v", err)
	}
	return uc
}

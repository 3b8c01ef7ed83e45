package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStartEmptyScheduleDisabled(t *testing.T) {
	s := New(time.UTC, func(context.Context) error { return nil }, discard())
	if err := s.Start(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.cron.Entries()) != 0 {
		t.Fatal("no job should be registered for an empty schedule")
	}
}

func TestStartRegistersJob(t *testing.T) {
	s := New(time.UTC, func(context.Context) error { return nil }, discard())
	if err := s.Start(context.Background(), "@hourly"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Stop()

	if len(s.cron.Entries()) != 1 {
		t.Fatalf("entries = %d, want 1", len(s.cron.Entries()))
	}
}

func TestStartRejectsBadSpec(t *testing.T) {
	s := New(time.UTC, func(context.Context) error { return nil }, discard())
	if err := s.Start(context.Background(), "not a cron spec"); err == nil {
		t.Fatal("expected error for malformed schedule")
	}
}

// Package scheduler runs the optional periodic repository sync.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler pulls the repository on a cron schedule so the checkout tracks
// remote edits made between messages.
type Scheduler struct {
	cron     *cron.Cron
	syncFunc func(ctx context.Context) error
	log      *slog.Logger
}

// New builds a scheduler whose cron expressions are evaluated in loc, the
// same zone used for note placement.
func New(loc *time.Location, syncFunc func(ctx context.Context) error, log *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		syncFunc: syncFunc,
		log:      log,
	}
}

// Start registers the sync job and starts the cron loop. An empty spec
// disables scheduling entirely.
func (s *Scheduler) Start(ctx context.Context, spec string) error {
	if spec == "" {
		return nil
	}

	_, err := s.cron.AddFunc(spec, func() {
		if err := s.syncFunc(ctx); err != nil {
			s.log.Error("scheduled repository sync failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("periodic repository sync enabled", "schedule", spec)
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
}

package syncer

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/vidscope/vidscope/pkg/domain"
)

//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner

// Scheduler runs the sync pipeline on a fixed interval. The first pass
// starts immediately so a fresh deployment populates the dashboard
// without waiting a full period.
type Scheduler struct {
	runner   Runner
	interval time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Runner executes one sync pass
type Runner interface {
	Run(ctx context.Context) (*domain.RunReport, error)
}

// NewScheduler creates a scheduler for the given runner
func NewScheduler(runner Runner, interval time.Duration) *Scheduler {
	return &Scheduler{runner: runner, interval: interval}
}

// Start launches the periodic loop. A non-positive interval disables
// scheduling, leaving sync available only via the manual trigger.
func (s *Scheduler) Start(ctx context.Context) {
	if s.interval <= 0 {
		lgr.Printf("[INFO] periodic sync disabled")
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.loop(ctx)
	lgr.Printf("[INFO] sync scheduler started, interval %v", s.interval)
}

// Stop cancels the loop and waits for an in-flight pass to finish
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
	lgr.Printf("[INFO] sync scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	report, err := s.runner.Run(ctx)
	if err != nil {
		lgr.Printf("[ERROR] scheduled sync failed: %v", err)
		return
	}

	total, failed := 0, 0
	for _, acc := range report.Accounts {
		total += acc.NewItems
		if acc.Error != "" {
			failed++
		}
	}
	lgr.Printf("[INFO] scheduled sync done: %d accounts, %d new videos, %d failed", len(report.Accounts), total, failed)
}

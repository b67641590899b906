package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

const cleanupInterval = 24 * time.Hour

// Refresher runs one date refresh cycle
type Refresher interface {
	Refresh(ctx context.Context) string
}

// Cleaner prunes stored history
type Cleaner interface {
	CleanupHistory() error
}

// Scheduler re-runs the refresh on a fixed interval and prunes history daily
type Scheduler struct {
	cron       gocron.Scheduler
	refreshJob gocron.Job
	logger     *zap.Logger
}

// New registers the refresh and cleanup jobs. Jobs start running after Start.
func New(ctx context.Context, refresher Refresher, cleaner Cleaner, interval time.Duration, logger *zap.Logger) (*Scheduler, error) {
	cron, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	refreshJob, err := cron.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			logger.Debug("Running scheduled refresh")
			refresher.Refresh(ctx)
		}),
		gocron.WithName("refresh-date"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh job: %w", err)
	}

	_, err = cron.NewJob(
		gocron.DurationJob(cleanupInterval),
		gocron.NewTask(func() {
			if err := cleaner.CleanupHistory(); err != nil {
				logger.Error("Failed to run scheduled cleanup", zap.Error(err))
			}
		}),
		gocron.WithName("cleanup-history"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cleanup job: %w", err)
	}

	return &Scheduler{
		cron:       cron,
		refreshJob: refreshJob,
		logger:     logger,
	}, nil
}

// Start begins running jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started")
}

// RunNow triggers an extra refresh outside the interval
func (s *Scheduler) RunNow() error {
	if err := s.refreshJob.RunNow(); err != nil {
		return fmt.Errorf("failed to trigger refresh: %w", err)
	}
	return nil
}

// Shutdown stops the scheduler and waits for running jobs
func (s *Scheduler) Shutdown() error {
	if err := s.cron.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown scheduler: %w", err)
	}
	s.logger.Info("Scheduler stopped")
	return nil
}

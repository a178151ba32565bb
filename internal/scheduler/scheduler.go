package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Job is a unit of scheduled work.
type Job interface {
	Run(ctx context.Context) error
}

type Scheduler struct {
	name     string
	job      Job
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewScheduler(name string, job Job, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		name:     name,
		job:      job,
		interval: interval,
		timeout:  5 * time.Minute,
		logger:   logger.With("scheduler", name),
	}
}

// Start runs the job immediately, then on every tick until the context
// is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runJob(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runJob(ctx)
		}
	}
}

func (s *Scheduler) runJob(ctx context.Context) {
	jobCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.job.Run(jobCtx); err != nil {
		s.logger.Error("job failed", "error", err)
	}
}

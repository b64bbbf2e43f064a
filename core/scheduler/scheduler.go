package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/adhocore/gronx"
	"go.uber.org/zap"
)

// Job is the unit of work run on every tick.
type Job func(ctx context.Context) error

// Scheduler runs a Job on a cron schedule.
type Scheduler struct {
	expr    string
	job     Job
	logger  *zap.Logger
	now     func() time.Time
	trigger chan struct{}
	stop    chan struct{}
	once    sync.Once
}

// New validates the cron expression and creates a Scheduler.
func New(expr string, job Job, logger *zap.Logger) (*Scheduler, error) {
	if !gronx.IsValid(expr) {
		return nil, fmt.Errorf("invalid cron expression: %q", expr)
	}
	return &Scheduler{
		expr:    expr,
		job:     job,
		logger:  logger,
		now:     time.Now,
		trigger: make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}, nil
}

// Next returns the first tick strictly after t.
func (s *Scheduler) Next(t time.Time) (time.Time, error) {
	return gronx.NextTickAfter(s.expr, t, false)
}

// Trigger requests an immediate run. It reports false when a run is already pending.
func (s *Scheduler) Trigger() bool {
	select {
	case s.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}

// Stop ends Run. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.stop) })
}

// Run blocks, running the job on every tick and trigger, until ctx is done or
// Stop is called.
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("Scheduler started", zap.String("cron", s.expr))
	defer s.logger.Info("Scheduler stopped")

	for {
		next, err := s.Next(s.now())
		if err != nil {
			s.logger.Error("Failed to compute next tick", zap.String("cron", s.expr), zap.Error(err))
			next = s.now().Add(time.Minute)
		}
		s.logger.Debug("Next cycle scheduled", zap.Time("at", next))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-s.stop:
			timer.Stop()
			return
		case <-s.trigger:
			timer.Stop()
			s.runJob(ctx, "manual")
		case <-timer.C:
			s.runJob(ctx, "cron")
		}
	}
}

func (s *Scheduler) runJob(ctx context.Context, source string) {
	started := s.now()
	if err := s.job(ctx); err != nil {
		s.logger.Error("Scheduled job failed", zap.String("source", source), zap.Error(err))
		return
	}
	s.logger.Info("Scheduled job finished",
		zap.String("source", source),
		zap.Duration("took", s.now().Sub(started)))
}

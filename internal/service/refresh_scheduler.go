package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"
)

// DefaultRefreshSchedule fires at local midnight every day.
const DefaultRefreshSchedule = "0 0 * * *"

// Refresher re-scrapes the canonical listing. TrendingService satisfies it.
type Refresher interface {
	Refresh(ctx context.Context) int
}

// RefreshScheduler refreshes the canonical listing once at start and then on
// a cron schedule, independent of request traffic. A failed or panicking tick
// is logged and the next one runs as planned.
type RefreshScheduler struct {
	cron    *cron.Cron
	job     cron.Job
	initial sync.WaitGroup
	svc     Refresher
	spec    string
	timeout time.Duration
	log     *log.Logger
	base    context.Context
}

// NewRefreshScheduler builds a scheduler for spec (standard five-field cron)
// evaluated in loc. Each refresh is bounded by timeout.
func NewRefreshScheduler(svc Refresher, spec string, loc *time.Location, timeout time.Duration, logger *log.Logger) *RefreshScheduler {
	l := logger.WithPrefix("scheduler")
	cl := cronLogger{l}
	s := &RefreshScheduler{
		cron:    cron.New(cron.WithLocation(loc), cron.WithLogger(cl)),
		svc:     svc,
		spec:    spec,
		timeout: timeout,
		log:     l,
		base:    context.Background(),
	}
	// One wrapped job for the start-up run and every scheduled run, so they
	// share a single skip-if-running guard.
	s.job = cron.NewChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)).Then(cron.FuncJob(s.tick))
	return s
}

// Start registers the schedule, kicks off the initial refresh in the
// background and starts the cron loop. ctx cancels in-flight refreshes.
func (s *RefreshScheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddJob(s.spec, s.job); err != nil {
		return fmt.Errorf("scheduling refresh %q: %w", s.spec, err)
	}
	s.base = ctx

	s.initial.Add(1)
	go func() {
		defer s.initial.Done()
		s.job.Run()
	}()
	s.cron.Start()
	s.log.Info("refresh scheduled", "spec", s.spec, "next", s.Next())
	return nil
}

// Stop halts the schedule. The returned context is done once every running
// refresh, the start-up one included, has returned.
func (s *RefreshScheduler) Stop() context.Context {
	stopped := s.cron.Stop()
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-stopped.Done()
		s.initial.Wait()
		cancel()
	}()
	return ctx
}

// Next reports when the next scheduled refresh fires; zero before Start.
func (s *RefreshScheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	if next := entries[0].Next; !next.IsZero() {
		return next
	}
	// Not started yet: compute from the schedule itself.
	return entries[0].Schedule.Next(time.Now())
}

func (s *RefreshScheduler) tick() {
	ctx, cancel := context.WithTimeout(s.base, s.timeout)
	defer cancel()

	start := time.Now()
	n := s.svc.Refresh(ctx)
	if n == 0 {
		s.log.Warn("refresh produced no repositories", "took", time.Since(start).Round(time.Millisecond))
		return
	}
	s.log.Info("refresh complete", "repos", n, "took", time.Since(start).Round(time.Millisecond))
}

// cronLogger adapts charmbracelet/log to cron.Logger.
type cronLogger struct {
	l *log.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debug(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Error(msg, append(keysAndValues, "err", err)...)
}

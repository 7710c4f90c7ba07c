package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/sale-prospector/internal/metrics"
	"github.com/donaldgifford/sale-prospector/internal/store"
)

const (
	geocodeJobTimeout = 30 * time.Minute
	staleJobThreshold = 2 * time.Hour
)

// Job run statuses stored in job_runs.
const (
	JobStatusSucceeded = "succeeded"
	JobStatusFailed    = "failed"
)

// ErrJobRunning is returned when a run is requested while the same job is
// already in progress.
var ErrJobRunning = errors.New("job already running")

// Scheduler manages the periodic geocode backfill.
type Scheduler struct {
	cron       *cron.Cron
	backfiller *Backfiller
	store      store.Store
	log        *slog.Logger

	geocodeEntryID cron.EntryID
	geocodeRunning atomic.Bool
}

// NewScheduler creates a new Scheduler that runs the backfill every
// geocodeInterval. Overlapping runs are skipped.
func NewScheduler(
	b *Backfiller,
	s store.Store,
	geocodeInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.PrintfLogger(slog.NewLogLogger(log.Handler(), slog.LevelDebug))),
	))

	sched := &Scheduler{
		cron:       c,
		backfiller: b,
		store:      s,
		log:        log,
	}

	id, err := c.AddFunc("@every "+geocodeInterval.String(), sched.runGeocode)
	if err != nil {
		return nil, fmt.Errorf("scheduling geocode backfill: %w", err)
	}
	sched.geocodeEntryID = id

	return sched, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamps publishes the next run time of each job.
func (s *Scheduler) SyncNextRunTimestamps() {
	if next := s.cron.Entry(s.geocodeEntryID).Next; !next.IsZero() {
		metrics.SchedulerNextGeocodeTimestamp.Set(float64(next.Unix()))
	}
}

// RecoverStaleJobRuns marks runs left "running" by a crashed process.
func (s *Scheduler) RecoverStaleJobRuns(ctx context.Context) {
	n, err := s.store.RecoverStaleJobRuns(ctx, staleJobThreshold)
	if err != nil {
		s.log.Error("recovering stale job runs failed", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("marked stale job runs as crashed", "count", n)
	}
}

// RunGeocodeBackfill runs one recorded backfill immediately. Scheduled and
// manual runs share one slot; a call made while a run is in progress
// returns ErrJobRunning without touching the store.
func (s *Scheduler) RunGeocodeBackfill(ctx context.Context) (*BackfillResult, error) {
	if !s.geocodeRunning.CompareAndSwap(false, true) {
		return nil, ErrJobRunning
	}
	defer s.geocodeRunning.Store(false)

	var res *BackfillResult
	err := s.runJob(ctx, GeocodeJobName, geocodeJobTimeout, func(ctx context.Context) (int, error) {
		var err error
		res, err = s.backfiller.Run(ctx)
		if res == nil {
			return 0, err
		}
		return res.Rows(), err
	})
	return res, err
}

func (s *Scheduler) runGeocode() {
	s.log.Info("scheduled geocode backfill starting")
	_, err := s.RunGeocodeBackfill(context.Background())
	switch {
	case errors.Is(err, ErrJobRunning):
		s.log.Info("geocode backfill already running, skipping scheduled run")
	case err != nil:
		s.log.Error("scheduled geocode backfill failed", "error", err)
	}
	s.SyncNextRunTimestamps()
}

// runJob records a job_runs row around fn. Failing to record the run does
// not stop the job.
func (s *Scheduler) runJob(
	ctx context.Context,
	name string,
	timeout time.Duration,
	fn func(context.Context) (int, error),
) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	runID, err := s.store.InsertJobRun(ctx, name)
	if err != nil {
		s.log.Error("recording job start failed", "job", name, "error", err)
	}

	rows, jobErr := fn(ctx)

	status, errText := JobStatusSucceeded, ""
	if jobErr != nil {
		status, errText = JobStatusFailed, jobErr.Error()
	}
	metrics.JobRunsTotal.WithLabelValues(name, status).Inc()

	if runID != "" {
		if err := s.store.CompleteJobRun(context.WithoutCancel(ctx), runID, status, errText, rows); err != nil {
			s.log.Error("recording job completion failed", "job", name, "error", err)
		}
	}

	return jobErr
}

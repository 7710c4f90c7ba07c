// Package notify defines the notification interface and implementations
// for background job reports.
package notify

import (
	"context"
	"time"
)

// JobReport summarizes one run of a background job.
type JobReport struct {
	JobName          string
	StartedAt        time.Time
	Duration         time.Duration
	SalesGeocoded    int
	ContactsGeocoded int
	Failures         int
	DailyLimitHit    bool
	Err              error
}

// Succeeded reports whether the run finished without a job-level error.
func (r *JobReport) Succeeded() bool {
	return r.Err == nil
}

// Notifier defines the interface for delivering job reports.
type Notifier interface {
	SendJobReport(ctx context.Context, report *JobReport) error
}

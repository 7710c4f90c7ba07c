// Package metrics defines Prometheus metrics for sale-prospector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "spx"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HTTPUnattributedWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_unattributed_writes_total",
		Help:      "API write requests received without an X-User-ID header.",
	}, []string{"method", "path"})
)

// Feed metrics.
var (
	FeedsComputedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feeds_computed_total",
		Help:      "Total number of sale feeds computed.",
	})

	FeedOpportunities = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "feed_opportunities",
		Help:      "Number of matched opportunities per computed feed.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1 .. 512
	})

	FeedDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "feed_duration_seconds",
		Help:      "Duration of feed computation in seconds, storage reads included.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Action metrics.
var (
	ActionsRecordedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_recorded_total",
		Help:      "Total number of sale/contact actions recorded, by action.",
	}, []string{"action"})

	ActionsUndoneTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_undone_total",
		Help:      "Total number of undo requests.",
	})

	SalesCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_completed_total",
		Help:      "Total number of mark-complete operations.",
	})

	SMSLoggedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sms_logged_total",
		Help:      "Total number of SMS log entries written.",
	})
)

// Geocoding metrics.
var (
	GeocodeCallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_calls_total",
		Help:      "Total cumulative geocoding API calls.",
	})

	GeocodeFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_failures_total",
		Help:      "Total number of failed geocoding lookups.",
	})

	GeocodeDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "geocode_daily_usage",
		Help:      "Current daily geocoding call count within the rolling 24-hour window.",
	})

	GeocodeDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_daily_limit_hits_total",
		Help:      "Total number of times the daily geocoding limit was reached.",
	})

	GeocodeBackfillDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "geocode_backfill_duration_seconds",
		Help:      "Duration of geocode backfill runs in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Scheduler metrics.
var (
	SchedulerNextGeocodeTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_geocode_timestamp",
		Help:      "Unix timestamp of the next scheduled geocode backfill.",
	})

	JobRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_runs_total",
		Help:      "Total scheduled job runs, by job and final status.",
	}, []string{"job_name", "status"})
)

// Notification metrics.
var (
	NotificationsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total job reports delivered.",
	})

	NotificationsFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Total job reports that could not be delivered.",
	})

	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of webhook deliveries in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 when the liveness check last succeeded.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 when the readiness check last succeeded, 0 otherwise.",
	})
)

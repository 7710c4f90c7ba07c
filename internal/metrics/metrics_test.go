package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, FeedsComputedTotal)
	assert.NotNil(t, FeedOpportunities)
	assert.NotNil(t, FeedDuration)
	assert.NotNil(t, ActionsRecordedTotal)
	assert.NotNil(t, ActionsUndoneTotal)
	assert.NotNil(t, SalesCompletedTotal)
	assert.NotNil(t, SMSLoggedTotal)
	assert.NotNil(t, GeocodeCallsTotal)
	assert.NotNil(t, GeocodeFailuresTotal)
	assert.NotNil(t, GeocodeDailyUsage)
	assert.NotNil(t, GeocodeDailyLimitHits)
	assert.NotNil(t, GeocodeBackfillDuration)
	assert.NotNil(t, SchedulerNextGeocodeTimestamp)
	assert.NotNil(t, JobRunsTotal)
	assert.NotNil(t, NotificationsSentTotal)
	assert.NotNil(t, NotificationsFailedTotal)
	assert.NotNil(t, NotificationDuration)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
}

func TestActionsRecordedTotal_Labels(t *testing.T) {
	t.Parallel()

	c := ActionsRecordedTotal.WithLabelValues("label_test")
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.InDelta(t, before+1, testutil.ToFloat64(c), 0.001)
}

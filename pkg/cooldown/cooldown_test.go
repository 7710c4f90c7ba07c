package cooldown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func daysAgo(n float64) *time.Time {
	t := now.Add(-time.Duration(n * float64(24*time.Hour)))
	return &t
}

func TestCompute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		lastSMS       *time.Time
		days          int
		wantCooldown  bool
		wantRemaining int
	}{
		{name: "never contacted", lastSMS: nil, days: 7, wantCooldown: false},
		{name: "three days ago with seven day window", lastSMS: daysAgo(3), days: 7, wantCooldown: true, wantRemaining: 4},
		{name: "window minus one", lastSMS: daysAgo(6), days: 7, wantCooldown: true, wantRemaining: 1},
		{name: "window plus one", lastSMS: daysAgo(8), days: 7, wantCooldown: false},
		{name: "exactly at window", lastSMS: daysAgo(7), days: 7, wantCooldown: false},
		{name: "partial day rounds up", lastSMS: daysAgo(2.5), days: 3, wantCooldown: true, wantRemaining: 1},
		{name: "just messaged", lastSMS: daysAgo(0), days: 14, wantCooldown: true, wantRemaining: 14},
		{name: "thirty day window", lastSMS: daysAgo(29), days: 30, wantCooldown: true, wantRemaining: 1},
		{name: "zero window disables", lastSMS: daysAgo(0), days: 0, wantCooldown: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st := Compute(tt.lastSMS, tt.days, now)
			assert.Equal(t, tt.wantCooldown, st.IsOnCooldown)
			if !tt.wantCooldown {
				assert.Nil(t, st.DaysRemaining)
				assert.Nil(t, st.AvailableAt)
				return
			}
			require.NotNil(t, st.DaysRemaining)
			assert.Equal(t, tt.wantRemaining, *st.DaysRemaining)
			require.NotNil(t, st.AvailableAt)
			assert.Equal(t, tt.lastSMS.AddDate(0, 0, tt.days), *st.AvailableAt)
		})
	}
}

func TestCompute_Boundary(t *testing.T) {
	t.Parallel()

	for _, days := range AllowedDays {
		assert.True(t, Compute(daysAgo(float64(days-1)), days, now).IsOnCooldown, "days=%d minus one", days)
		assert.False(t, Compute(daysAgo(float64(days+1)), days, now).IsOnCooldown, "days=%d plus one", days)
	}
}

func TestCompute_FutureTimestampClampsToWindow(t *testing.T) {
	t.Parallel()

	st := Compute(daysAgo(-3), 7, now)
	require.True(t, st.IsOnCooldown)
	require.NotNil(t, st.DaysRemaining)
	assert.Equal(t, 7, *st.DaysRemaining)
	require.NotNil(t, st.AvailableAt)
	assert.Equal(t, now.AddDate(0, 0, 7), *st.AvailableAt)
}

func TestValid(t *testing.T) {
	t.Parallel()

	for _, d := range []int{3, 7, 14, 30} {
		assert.True(t, Valid(d), d)
	}
	for _, d := range []int{0, 1, 5, 10, 31, -7} {
		assert.False(t, Valid(d), d)
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	opps := []domain.Opportunity{
		{Contact: domain.Contact{ID: "d", LastSMSAt: daysAgo(3)}, CanMessage: true},
		{Contact: domain.Contact{ID: "e", LastSMSAt: daysAgo(20)}, CanMessage: true},
		{Contact: domain.Contact{ID: "f"}, CanMessage: true},
	}

	Apply(opps, 7, now)

	assert.True(t, opps[0].IsOnCooldown)
	require.NotNil(t, opps[0].CooldownDaysRemaining)
	assert.Equal(t, 4, *opps[0].CooldownDaysRemaining)
	assert.False(t, opps[0].CanMessage)

	assert.False(t, opps[1].IsOnCooldown)
	assert.Nil(t, opps[1].CooldownDaysRemaining)
	assert.True(t, opps[1].CanMessage)

	assert.False(t, opps[2].IsOnCooldown)
	assert.True(t, opps[2].CanMessage)
}

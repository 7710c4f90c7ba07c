// Package cooldown computes whether a contact was messaged too recently to
// be messaged again.
package cooldown

import (
	"math"
	"slices"
	"time"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

const day = 24 * time.Hour

// AllowedDays lists the cooldown windows a user may choose.
var AllowedDays = []int{3, 7, 14, 30}

// Status is the cooldown state of a contact at a point in time.
type Status struct {
	IsOnCooldown  bool
	DaysRemaining *int
	AvailableAt   *time.Time
}

// Valid reports whether days is one of AllowedDays.
func Valid(days int) bool {
	return slices.Contains(AllowedDays, days)
}

// Compute returns the cooldown status for a contact last messaged at
// lastSMSAt. A nil timestamp is never on cooldown.
func Compute(lastSMSAt *time.Time, days int, now time.Time) Status {
	if lastSMSAt == nil || days <= 0 {
		return Status{}
	}

	// A timestamp ahead of now (clock skew) counts as just messaged.
	sent := *lastSMSAt
	if sent.After(now) {
		sent = now
	}

	elapsed := now.Sub(sent).Hours() / 24
	window := float64(days)
	if elapsed >= window {
		return Status{}
	}

	remaining := int(math.Ceil(window - elapsed))
	available := sent.Add(time.Duration(days) * day)
	return Status{
		IsOnCooldown:  true,
		DaysRemaining: &remaining,
		AvailableAt:   &available,
	}
}

// Apply overlays cooldown state onto opportunities in place. Contacts on
// cooldown cannot be messaged.
func Apply(opps []domain.Opportunity, days int, now time.Time) {
	for i := range opps {
		st := Compute(opps[i].Contact.LastSMSAt, days, now)
		opps[i].IsOnCooldown = st.IsOnCooldown
		opps[i].CooldownDaysRemaining = st.DaysRemaining
		if st.IsOnCooldown {
			opps[i].CanMessage = false
		}
	}
}

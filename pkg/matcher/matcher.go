// Package matcher pairs a sale with the contacts living in its suburb and
// ranks them for outreach.
package matcher

import (
	"math"
	"sort"
	"strings"
	"time"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// Option configures a Match call.
type Option func(*options)

type options struct {
	estimator ProximityEstimator
}

// WithEstimator overrides the proximity estimator.
func WithEstimator(e ProximityEstimator) Option {
	return func(o *options) {
		o.estimator = e
	}
}

// Match returns the ranked opportunities for sale. Only contacts whose
// address suburb equals the sale suburb (case-insensitive) are considered.
// Neither sale nor contacts are modified.
func Match(sale domain.Sale, contacts []domain.Contact, now time.Time, opts ...Option) []domain.Opportunity {
	o := options{estimator: DefaultEstimator{}}
	for _, opt := range opts {
		opt(&o)
	}

	suburb := domain.NormalizeSuburb(sale.Suburb)
	street := strings.ToLower(strings.TrimSpace(sale.StreetName))

	opps := make([]domain.Opportunity, 0)
	for i := range contacts {
		c := contacts[i]
		if domain.NormalizeSuburb(c.AddressSuburb) != suburb {
			continue
		}

		same := SameStreet(street, c.Address)
		opp := domain.Opportunity{
			SaleID:         sale.ID,
			Contact:        c,
			SameStreet:     same,
			Distance:       o.estimator.Estimate(&sale, &c, same),
			NeverContacted: c.LastSMSAt == nil,
			ActionStatus:   domain.ActionNone,
			CanMessage:     c.CanMessage(),
		}
		if c.LastSMSAt != nil {
			opp.DaysSinceContact = daysSince(*c.LastSMSAt, now)
		}
		opps = append(opps, opp)
	}

	Sort(opps)
	return opps
}

// SameStreet reports whether address contains the lower-cased street name.
// An empty street name never matches.
func SameStreet(loweredStreet, address string) bool {
	if loweredStreet == "" {
		return false
	}
	return strings.Contains(strings.ToLower(address), loweredStreet)
}

// Sort orders opportunities by SmartMatch priority: same street first, then
// never contacted, then nearest (a known distance beats an unknown one), then
// longest silence. Equal keys keep their input order.
func Sort(opps []domain.Opportunity) {
	sort.SliceStable(opps, func(i, j int) bool {
		return less(&opps[i], &opps[j])
	})
}

func less(a, b *domain.Opportunity) bool {
	if a.SameStreet != b.SameStreet {
		return a.SameStreet
	}
	if a.NeverContacted != b.NeverContacted {
		return a.NeverContacted
	}
	if (a.Distance != nil) != (b.Distance != nil) {
		return a.Distance != nil
	}
	if a.Distance != nil && *a.Distance != *b.Distance {
		return *a.Distance < *b.Distance
	}
	if a.DaysSinceContact != nil && b.DaysSinceContact != nil {
		return *a.DaysSinceContact > *b.DaysSinceContact
	}
	return false
}

func daysSince(t, now time.Time) *int {
	d := int(math.Floor(now.Sub(t).Hours() / 24))
	d = max(d, 0)
	return &d
}

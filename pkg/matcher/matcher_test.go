package matcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func contact(id, address, suburb string, lastSMS *time.Time) domain.Contact {
	return domain.Contact{
		ID:            id,
		FirstName:     id,
		Phone:         ptr("+61400000000"),
		Address:       address,
		AddressSuburb: suburb,
		LastSMSAt:     lastSMS,
	}
}

func ids(opps []domain.Opportunity) []string {
	out := make([]string, len(opps))
	for i := range opps {
		out[i] = opps[i].Contact.ID
	}
	return out
}

func TestMatch_EastsideScenario(t *testing.T) {
	t.Parallel()

	sale := domain.Sale{
		ID:         "sale1",
		Address:    "12 Main St",
		Suburb:     "Eastside",
		StreetName: "Main St",
	}
	contacts := []domain.Contact{
		contact("A", "10 Main St", "Eastside", nil),
		contact("B", "45 Other Ave", "Eastside", nil),
		contact("C", "99 Main St", "Westside", nil),
	}

	opps := Match(sale, contacts, now)
	require.Len(t, opps, 2)
	assert.Equal(t, []string{"A", "B"}, ids(opps))

	a := opps[0]
	assert.True(t, a.SameStreet)
	require.NotNil(t, a.Distance)
	assert.InDelta(t, 20.0, *a.Distance, 0.0001)
	assert.True(t, a.NeverContacted)
	assert.Nil(t, a.DaysSinceContact)
	assert.Equal(t, domain.ActionNone, a.ActionStatus)

	b := opps[1]
	assert.False(t, b.SameStreet)
	assert.Nil(t, b.Distance)
	assert.True(t, b.NeverContacted)
}

func TestMatch_SuburbCaseInsensitive(t *testing.T) {
	t.Parallel()

	sale := domain.Sale{ID: "s", Suburb: "  EASTSIDE ", StreetName: "Main St"}
	contacts := []domain.Contact{
		contact("lower", "1 Foo Rd", "eastside", nil),
		contact("mixed", "2 Foo Rd", "EastSide", nil),
		contact("other", "3 Foo Rd", "East Side", nil),
	}

	opps := Match(sale, contacts, now)
	assert.Equal(t, []string{"lower", "mixed"}, ids(opps))
	for _, o := range opps {
		assert.Equal(t, domain.NormalizeSuburb(sale.Suburb), domain.NormalizeSuburb(o.Contact.AddressSuburb))
	}
}

func TestMatch_SameStreetIsSubstring(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		street  string
		address string
		want    bool
	}{
		{name: "exact", street: "Main St", address: "10 Main St", want: true},
		{name: "case differs", street: "MAIN ST", address: "10 main st", want: true},
		{name: "substring false positive accepted", street: "Elm", address: "4 Elmwood Dr", want: true},
		{name: "different street", street: "Main St", address: "45 Other Ave", want: false},
		{name: "empty street never matches", street: "", address: "10 Main St", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sale := domain.Sale{ID: "s", Suburb: "X", StreetName: tt.street}
			opps := Match(sale, []domain.Contact{contact("c", tt.address, "X", nil)}, now)
			require.Len(t, opps, 1)
			assert.Equal(t, tt.want, opps[0].SameStreet)
		})
	}
}

func TestMatch_DaysSinceContact(t *testing.T) {
	t.Parallel()

	sale := domain.Sale{ID: "s", Suburb: "X", StreetName: "Main St"}

	tests := []struct {
		name    string
		lastSMS time.Time
		want    int
	}{
		{name: "floor of partial days", lastSMS: now.Add(-(3*24 + 23) * time.Hour), want: 3},
		{name: "just now", lastSMS: now.Add(-time.Minute), want: 0},
		{name: "future clamps to zero", lastSMS: now.Add(48 * time.Hour), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opps := Match(sale, []domain.Contact{contact("c", "1 A St", "X", &tt.lastSMS)}, now)
			require.Len(t, opps, 1)
			require.NotNil(t, opps[0].DaysSinceContact)
			assert.Equal(t, tt.want, *opps[0].DaysSinceContact)
			assert.False(t, opps[0].NeverContacted)
		})
	}
}

func TestMatch_SortOrder(t *testing.T) {
	t.Parallel()

	sale := domain.Sale{ID: "s", Address: "50 Main St", Suburb: "X", StreetName: "Main St"}
	contacts := []domain.Contact{
		contact("far-silent", "9 Pine Rd", "X", ptr(now.AddDate(0, 0, -40))),
		contact("near-street-contacted", "52 Main St", "X", ptr(now.AddDate(0, 0, -10))),
		contact("recent-silent", "7 Pine Rd", "X", ptr(now.AddDate(0, 0, -12))),
		contact("never-other", "3 Oak Ave", "X", nil),
		contact("far-street-never", "80 Main St", "X", nil),
		contact("near-street-never", "48 Main St", "X", nil),
	}

	opps := Match(sale, contacts, now)
	assert.Equal(t, []string{
		"near-street-never",
		"far-street-never",
		"near-street-contacted",
		"never-other",
		"far-silent",
		"recent-silent",
	}, ids(opps))
}

func TestSort_KnownDistanceFirstRegardlessOfInputOrder(t *testing.T) {
	t.Parallel()

	opp := func(id string, dist *float64, days int) domain.Opportunity {
		return domain.Opportunity{
			Contact:          domain.Contact{ID: id},
			SameStreet:       true,
			Distance:         dist,
			DaysSinceContact: ptr(days),
		}
	}
	a := opp("a", ptr(100.0), 30)
	b := opp("b", nil, 20)
	c := opp("c", ptr(50.0), 10)

	tests := []struct {
		name  string
		input []domain.Opportunity
	}{
		{name: "a b c", input: []domain.Opportunity{a, b, c}},
		{name: "b c a", input: []domain.Opportunity{b, c, a}},
		{name: "c a b", input: []domain.Opportunity{c, a, b}},
		{name: "b a c", input: []domain.Opportunity{b, a, c}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opps := append([]domain.Opportunity(nil), tt.input...)
			Sort(opps)
			assert.Equal(t, []string{"c", "a", "b"}, ids(opps))
		})
	}
}

func TestMatch_StableOnEqualKeys(t *testing.T) {
	t.Parallel()

	sale := domain.Sale{ID: "s", Suburb: "X", StreetName: "Main St"}
	contacts := []domain.Contact{
		contact("c1", "Unit A Pine Rd", "X", nil),
		contact("c2", "Unit B Pine Rd", "X", nil),
		contact("c3", "Unit C Pine Rd", "X", nil),
		contact("c4", "Unit D Pine Rd", "X", nil),
	}

	for range 5 {
		assert.Equal(t, []string{"c1", "c2", "c3", "c4"}, ids(Match(sale, contacts, now)))
	}
}

func TestMatch_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	sale := domain.Sale{ID: "s", Suburb: "X", StreetName: "Main St"}
	contacts := []domain.Contact{
		contact("b", "1 Pine Rd", "X", nil),
		contact("a", "1 Main St", "X", nil),
	}
	before := append([]domain.Contact(nil), contacts...)

	_ = Match(sale, contacts, now)
	assert.Equal(t, before, contacts)
}

func TestMatch_NoPhoneCannotMessage(t *testing.T) {
	t.Parallel()

	sale := domain.Sale{ID: "s", Suburb: "X"}
	c := contact("c", "1 A St", "X", nil)
	c.Phone = nil

	opps := Match(sale, []domain.Contact{c}, now)
	require.Len(t, opps, 1)
	assert.False(t, opps[0].CanMessage)
}

func TestMatch_EmptyContacts(t *testing.T) {
	t.Parallel()

	opps := Match(domain.Sale{ID: "s", Suburb: "X"}, nil, now)
	assert.NotNil(t, opps)
	assert.Empty(t, opps)
}

type fixedEstimator float64

func (f fixedEstimator) Estimate(_ *domain.Sale, _ *domain.Contact, _ bool) *float64 {
	d := float64(f)
	return &d
}

func TestMatch_WithEstimator(t *testing.T) {
	t.Parallel()

	sale := domain.Sale{ID: "s", Suburb: "X", StreetName: "Main St"}
	opps := Match(sale, []domain.Contact{contact("c", "1 Pine Rd", "X", nil)}, now,
		WithEstimator(fixedEstimator(42)))
	require.Len(t, opps, 1)
	require.NotNil(t, opps[0].Distance)
	assert.InDelta(t, 42.0, *opps[0].Distance, 0.0001)
}

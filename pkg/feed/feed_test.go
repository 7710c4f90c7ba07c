package feed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/sale-prospector/pkg/cooldown"
	"github.com/donaldgifford/sale-prospector/pkg/feed"
	"github.com/donaldgifford/sale-prospector/pkg/matcher"
	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func ids(opps []domain.Opportunity) []string {
	out := make([]string, len(opps))
	for i := range opps {
		out[i] = opps[i].Contact.ID
	}
	return out
}

func eastside() (domain.Sale, []domain.Contact) {
	threeDaysAgo := now.AddDate(0, 0, -3)
	monthAgo := now.AddDate(0, 0, -30)
	phone := "+61400000000"

	sale := domain.Sale{ID: "sale1", Address: "12 Main St", Suburb: "Eastside", StreetName: "Main St"}
	contacts := []domain.Contact{
		{ID: "A", Address: "10 Main St", AddressSuburb: "Eastside", Phone: &phone},
		{ID: "B", Address: "45 Other Ave", AddressSuburb: "Eastside", Phone: &phone},
		{ID: "C", Address: "99 Main St", AddressSuburb: "Westside", Phone: &phone},
		{ID: "D", Address: "14 Main St", AddressSuburb: "Eastside", Phone: &phone, LastSMSAt: &threeDaysAgo},
		{ID: "E", Address: "3 Pine Rd", AddressSuburb: "eastside", Phone: &phone, LastSMSAt: &monthAgo},
	}
	return sale, contacts
}

func build(t *testing.T, actions []domain.SaleContactAction) domain.FeedGroups {
	t.Helper()

	sale, contacts := eastside()
	opps := matcher.Match(sale, contacts, now)
	cooldown.Apply(opps, 7, now)
	feed.ApplyActions(opps, actions)
	return feed.Partition(opps)
}

func TestPartition_Groups(t *testing.T) {
	t.Parallel()

	g := build(t, nil)

	assert.Equal(t, []string{"A"}, ids(g.Hot))
	assert.Equal(t, []string{"B"}, ids(g.NeverContacted))
	assert.Equal(t, []string{"E"}, ids(g.PreviouslyContacted))
	assert.Equal(t, []string{"D"}, ids(g.OnCooldown), "cooldown wins over same street")
	assert.Empty(t, g.Contacted)
	assert.Empty(t, g.Ignored)

	require.Len(t, g.OnCooldown, 1)
	require.NotNil(t, g.OnCooldown[0].CooldownDaysRemaining)
	assert.Equal(t, 4, *g.OnCooldown[0].CooldownDaysRemaining)
	assert.False(t, g.OnCooldown[0].CanMessage)
}

func TestPartition_ContactedOnlyInContactedGroup(t *testing.T) {
	t.Parallel()

	g := build(t, []domain.SaleContactAction{
		{SaleID: "sale1", ContactID: "A", Action: domain.ActionContacted},
	})

	assert.Equal(t, []string{"A"}, ids(g.Contacted))
	assert.NotContains(t, ids(g.Hot), "A")
	assert.NotContains(t, ids(g.NeverContacted), "A")
	assert.NotContains(t, ids(g.OnCooldown), "A")
}

func TestPartition_ActionTakesPrecedenceOverCooldown(t *testing.T) {
	t.Parallel()

	g := build(t, []domain.SaleContactAction{
		{SaleID: "sale1", ContactID: "D", Action: domain.ActionIgnored},
	})

	assert.Equal(t, []string{"D"}, ids(g.Ignored))
	assert.Empty(t, g.OnCooldown)
	require.Len(t, g.Ignored, 1)
	assert.True(t, g.Ignored[0].IsOnCooldown, "cooldown axis is still reported")
}

func TestPartition_UndoRestoresGroup(t *testing.T) {
	t.Parallel()

	recorded := build(t, []domain.SaleContactAction{
		{SaleID: "sale1", ContactID: "B", Action: domain.ActionIgnored},
	})
	assert.Equal(t, []string{"B"}, ids(recorded.Ignored))

	undone := build(t, nil)
	assert.Empty(t, undone.Ignored)
	assert.Empty(t, undone.Contacted)
	assert.Equal(t, []string{"B"}, ids(undone.NeverContacted))
}

func TestPartition_MutuallyExclusive(t *testing.T) {
	t.Parallel()

	g := build(t, []domain.SaleContactAction{
		{SaleID: "sale1", ContactID: "E", Action: domain.ActionContacted},
	})

	seen := map[string]int{}
	for _, group := range [][]domain.Opportunity{
		g.Hot, g.NeverContacted, g.PreviouslyContacted, g.OnCooldown, g.Contacted, g.Ignored,
	} {
		for _, o := range group {
			seen[o.Contact.ID]++
		}
	}
	assert.Equal(t, map[string]int{"A": 1, "B": 1, "D": 1, "E": 1}, seen)
}

func TestProgress(t *testing.T) {
	t.Parallel()

	g := build(t, []domain.SaleContactAction{
		{SaleID: "sale1", ContactID: "A", Action: domain.ActionContacted},
		{SaleID: "sale1", ContactID: "B", Action: domain.ActionIgnored},
	})

	p := feed.Progress(g, 3)
	assert.Equal(t, domain.SaleProgress{
		Total:        4,
		Contacted:    1,
		Ignored:      1,
		OnCooldown:   1,
		Remaining:    1,
		MessagesSent: 3,
		Complete:     false,
	}, p)
}

func TestProgress_CompleteWhenNothingRemains(t *testing.T) {
	t.Parallel()

	g := build(t, []domain.SaleContactAction{
		{SaleID: "sale1", ContactID: "A", Action: domain.ActionContacted},
		{SaleID: "sale1", ContactID: "B", Action: domain.ActionIgnored},
		{SaleID: "sale1", ContactID: "E", Action: domain.ActionIgnored},
	})

	p := feed.Progress(g, 0)
	assert.Equal(t, 0, p.Remaining)
	assert.True(t, p.Complete)

	empty := feed.Progress(feed.Partition(nil), 0)
	assert.False(t, empty.Complete)
}

func TestRemaining(t *testing.T) {
	t.Parallel()

	g := build(t, nil)
	assert.Equal(t, []string{"A", "B", "E"}, ids(feed.Remaining(g)))
}

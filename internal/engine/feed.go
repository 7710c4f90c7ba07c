package engine

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/donaldgifford/sale-prospector/internal/metrics"
	"github.com/donaldgifford/sale-prospector/pkg/cooldown"
	"github.com/donaldgifford/sale-prospector/pkg/feed"
	"github.com/donaldgifford/sale-prospector/pkg/matcher"
	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// Feed computes the grouped, ranked opportunities for one sale as seen by
// userID. Nothing is written.
func (p *Prospector) Feed(ctx context.Context, saleID, userID string) (f *domain.Feed, err error) {
	ctx, end := startSpan(ctx, "engine.Feed", attribute.String("sale.id", saleID))
	defer func() { end(err) }()

	start := time.Now()
	f, err = p.buildFeed(ctx, saleID, userID)
	if err != nil {
		return nil, err
	}

	metrics.FeedsComputedTotal.Inc()
	metrics.FeedOpportunities.Observe(float64(f.Progress.Total))
	metrics.FeedDuration.Observe(time.Since(start).Seconds())

	return f, nil
}

func (p *Prospector) buildFeed(ctx context.Context, saleID, userID string) (*domain.Feed, error) {
	if err := requireID("sale_id", saleID); err != nil {
		return nil, err
	}

	sale, err := p.store.GetSale(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("getting sale %s: %w", saleID, err)
	}

	contacts, err := p.store.ListContactsBySuburb(ctx, sale.Suburb)
	if err != nil {
		return nil, fmt.Errorf("listing contacts in %q: %w", sale.Suburb, err)
	}

	actions, err := p.store.ListActionsForSale(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("listing actions for sale %s: %w", saleID, err)
	}

	sent, err := p.store.CountMessagesForSale(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("counting messages for sale %s: %w", saleID, err)
	}

	days, err := p.cooldownDays(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := p.now()
	opps := matcher.Match(*sale, contacts, now, matcher.WithEstimator(p.estimator))
	cooldown.Apply(opps, days, now)
	feed.ApplyActions(opps, actions)
	groups := feed.Partition(opps)

	p.log.Debug("feed computed",
		"sale", saleID,
		"contacts", len(contacts),
		"opportunities", len(opps),
		"cooldown_days", days,
	)

	return &domain.Feed{
		Sale:         *sale,
		CooldownDays: days,
		Groups:       groups,
		Progress:     feed.Progress(groups, sent),
	}, nil
}

// MarkSaleComplete resolves every remaining opportunity of a sale as
// ignored and returns how many pairs it wrote. Contacts on cooldown and
// pairs that already have an action are left alone.
func (p *Prospector) MarkSaleComplete(ctx context.Context, saleID, userID string) (n int, err error) {
	ctx, end := startSpan(ctx, "engine.MarkSaleComplete", attribute.String("sale.id", saleID))
	defer func() { end(err) }()

	if err := requireID("user_id", userID); err != nil {
		return 0, err
	}

	f, err := p.buildFeed(ctx, saleID, userID)
	if err != nil {
		return 0, err
	}

	remaining := feed.Remaining(f.Groups)
	if len(remaining) == 0 {
		return 0, nil
	}

	ids := make([]string, len(remaining))
	for i := range remaining {
		ids[i] = remaining[i].Contact.ID
	}

	n, err = p.store.InsertIgnoredActions(ctx, saleID, ids, userID)
	if err != nil {
		return 0, fmt.Errorf("marking sale %s complete: %w", saleID, err)
	}

	metrics.SalesCompletedTotal.Inc()
	metrics.ActionsRecordedTotal.WithLabelValues(string(domain.ActionIgnored)).Add(float64(n))
	p.log.Info("sale marked complete", "sale", saleID, "user", userID, "resolved", n)

	return n, nil
}

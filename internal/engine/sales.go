package engine

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/donaldgifford/sale-prospector/internal/store"
	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// ListSales returns one page of sales matching filter. When favoritesOnly
// is set and no explicit suburb is given, the page is scoped to the user's
// favorite suburbs; a user without favorites sees every suburb.
func (p *Prospector) ListSales(
	ctx context.Context,
	filter domain.SaleFilter,
	userID string,
	favoritesOnly bool,
) (page *domain.SalePage, err error) {
	ctx, end := startSpan(ctx, "engine.ListSales",
		attribute.String("filter.date_range", string(filter.DateRange)),
		attribute.Bool("filter.favorites", favoritesOnly),
		attribute.Int("filter.offset", filter.Offset),
	)
	defer func() { end(err) }()

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	if favoritesOnly && filter.Suburb == "" && userID != "" {
		favs, err := p.store.ListFavorites(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("loading favorite suburbs: %w", err)
		}
		filter.Suburbs = make([]string, 0, len(favs))
		for _, f := range favs {
			filter.Suburbs = append(filter.Suburbs, f.Suburb)
		}
	}

	sales, total, err := p.store.ListSales(ctx, &store.SaleQuery{SaleFilter: filter}, p.now())
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	if sales == nil {
		sales = []domain.SaleSummary{}
	}

	return &domain.SalePage{
		Sales:   sales,
		Total:   total,
		Offset:  filter.Offset,
		HasMore: filter.Offset+len(sales) < total,
	}, nil
}

// GetSale returns one sale by ID.
func (p *Prospector) GetSale(ctx context.Context, id string) (sale *domain.Sale, err error) {
	ctx, end := startSpan(ctx, "engine.GetSale", attribute.String("sale.id", id))
	defer func() { end(err) }()

	if err := requireID("sale_id", id); err != nil {
		return nil, err
	}

	sale, err = p.store.GetSale(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting sale %s: %w", id, err)
	}
	return sale, nil
}

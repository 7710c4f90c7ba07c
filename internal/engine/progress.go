package engine

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// SuburbProgress returns per-suburb counters. An empty list means the
// user's favorite suburbs, or every suburb when the user has none.
func (p *Prospector) SuburbProgress(ctx context.Context, userID string, suburbs []string) (out []domain.SuburbProgress, err error) {
	ctx, end := startSpan(ctx, "engine.SuburbProgress", attribute.Int("suburbs", len(suburbs)))
	defer func() { end(err) }()

	if len(suburbs) == 0 && userID != "" {
		favs, err := p.store.ListFavorites(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("loading favorite suburbs: %w", err)
		}
		for _, f := range favs {
			suburbs = append(suburbs, f.Suburb)
		}
	}

	out, err = p.store.ListSuburbProgress(ctx, suburbs)
	if err != nil {
		return nil, fmt.Errorf("computing suburb progress: %w", err)
	}
	if out == nil {
		out = []domain.SuburbProgress{}
	}
	return out, nil
}

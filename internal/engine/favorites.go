package engine

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// ListFavorites returns the user's pinned suburbs in display order.
func (p *Prospector) ListFavorites(ctx context.Context, userID string) ([]domain.SuburbFavorite, error) {
	if err := requireID("user_id", userID); err != nil {
		return nil, err
	}
	favs, err := p.store.ListFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	if favs == nil {
		favs = []domain.SuburbFavorite{}
	}
	return favs, nil
}

// AddFavorite pins a suburb at the end of the user's list. Pinning a suburb
// that is already pinned is a no-op.
func (p *Prospector) AddFavorite(ctx context.Context, userID, suburb string) (favs []domain.SuburbFavorite, err error) {
	ctx, end := startSpan(ctx, "engine.AddFavorite", attribute.String("suburb", suburb))
	defer func() { end(err) }()

	suburb = strings.TrimSpace(suburb)
	if err := requireID("suburb", suburb); err != nil {
		return nil, err
	}

	favs, err = p.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	if indexOfSuburb(favs, suburb) >= 0 {
		return favs, nil
	}
	if len(favs) >= domain.MaxFavorites {
		return nil, domain.NewValidationError("suburb", "at most %d favorite suburbs allowed", domain.MaxFavorites)
	}

	if err := p.store.AddFavorite(ctx, userID, suburb); err != nil {
		return nil, fmt.Errorf("adding favorite %q: %w", suburb, err)
	}
	return p.ListFavorites(ctx, userID)
}

// RemoveFavorite unpins a suburb. Unpinning a suburb that is not pinned is
// a no-op.
func (p *Prospector) RemoveFavorite(ctx context.Context, userID, suburb string) ([]domain.SuburbFavorite, error) {
	if err := requireID("user_id", userID); err != nil {
		return nil, err
	}
	if err := p.store.RemoveFavorite(ctx, userID, strings.TrimSpace(suburb)); err != nil {
		return nil, fmt.Errorf("removing favorite %q: %w", suburb, err)
	}
	return p.ListFavorites(ctx, userID)
}

// ReorderFavorites rewrites the order of the user's pinned suburbs. The
// given list must name every pinned suburb exactly once.
func (p *Prospector) ReorderFavorites(ctx context.Context, userID string, suburbs []string) ([]domain.SuburbFavorite, error) {
	favs, err := p.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(suburbs) != len(favs) {
		return nil, domain.NewValidationError("suburbs",
			"must list all %d favorite suburbs (got %d)", len(favs), len(suburbs))
	}

	seen := make(map[int]bool, len(suburbs))
	ordered := make([]string, len(suburbs))
	for i, s := range suburbs {
		idx := indexOfSuburb(favs, s)
		if idx < 0 {
			return nil, domain.NewValidationError("suburbs", "%q is not a favorite suburb", s)
		}
		if seen[idx] {
			return nil, domain.NewValidationError("suburbs", "%q is listed more than once", s)
		}
		seen[idx] = true
		ordered[i] = favs[idx].Suburb
	}

	if err := p.store.ReorderFavorites(ctx, userID, ordered); err != nil {
		return nil, fmt.Errorf("reordering favorites: %w", err)
	}
	return p.ListFavorites(ctx, userID)
}

func indexOfSuburb(favs []domain.SuburbFavorite, suburb string) int {
	key := domain.NormalizeSuburb(suburb)
	for i := range favs {
		if domain.NormalizeSuburb(favs[i].Suburb) == key {
			return i
		}
	}
	return -1
}

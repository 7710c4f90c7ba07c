package client

import (
	"context"
	"net/url"
	"strings"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// ListFavorites returns the user's pinned suburbs in order.
func (c *Client) ListFavorites(ctx context.Context) ([]domain.SuburbFavorite, error) {
	var favs []domain.SuburbFavorite
	if err := c.get(ctx, "/api/v1/favorites", &favs); err != nil {
		return nil, err
	}
	return favs, nil
}

// AddFavorite pins a suburb and returns the updated list.
func (c *Client) AddFavorite(ctx context.Context, suburb string) ([]domain.SuburbFavorite, error) {
	var favs []domain.SuburbFavorite
	if err := c.post(ctx, "/api/v1/favorites", map[string]string{"suburb": suburb}, &favs); err != nil {
		return nil, err
	}
	return favs, nil
}

// RemoveFavorite unpins a suburb and returns the updated list.
func (c *Client) RemoveFavorite(ctx context.Context, suburb string) ([]domain.SuburbFavorite, error) {
	var favs []domain.SuburbFavorite
	if err := c.del(ctx, "/api/v1/favorites/"+url.PathEscape(suburb), &favs); err != nil {
		return nil, err
	}
	return favs, nil
}

// ReorderFavorites sets the display order of every pinned suburb.
func (c *Client) ReorderFavorites(ctx context.Context, suburbs []string) ([]domain.SuburbFavorite, error) {
	var favs []domain.SuburbFavorite
	if err := c.put(ctx, "/api/v1/favorites/order", map[string][]string{"suburbs": suburbs}, &favs); err != nil {
		return nil, err
	}
	return favs, nil
}

type cooldownBody struct {
	Days int `json:"days"`
}

// GetCooldown returns the user's cooldown window in days.
func (c *Client) GetCooldown(ctx context.Context) (int, error) {
	var b cooldownBody
	if err := c.get(ctx, "/api/v1/settings/cooldown", &b); err != nil {
		return 0, err
	}
	return b.Days, nil
}

// SetCooldown stores the user's cooldown window.
func (c *Client) SetCooldown(ctx context.Context, days int) error {
	return c.put(ctx, "/api/v1/settings/cooldown", cooldownBody{Days: days}, nil)
}

// SuburbProgress returns counters for the given suburbs, or for the user's
// favorites when none are given.
func (c *Client) SuburbProgress(ctx context.Context, suburbs []string) ([]domain.SuburbProgress, error) {
	path := "/api/v1/progress/suburbs"
	if len(suburbs) > 0 {
		path += "?suburbs=" + url.QueryEscape(strings.Join(suburbs, ","))
	}

	var out []domain.SuburbProgress
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

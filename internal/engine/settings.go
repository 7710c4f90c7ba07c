package engine

import (
	"context"
	"fmt"

	"github.com/donaldgifford/sale-prospector/pkg/cooldown"
	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// CooldownDays returns the user's cooldown window, falling back to the
// configured default.
func (p *Prospector) CooldownDays(ctx context.Context, userID string) (int, error) {
	return p.cooldownDays(ctx, userID)
}

// SetCooldownDays stores the user's cooldown window.
func (p *Prospector) SetCooldownDays(ctx context.Context, userID string, days int) error {
	if err := requireID("user_id", userID); err != nil {
		return err
	}
	if !cooldown.Valid(days) {
		return domain.NewValidationError("days", "must be one of %v (got %d)", cooldown.AllowedDays, days)
	}
	if err := p.store.SetCooldownDays(ctx, userID, days); err != nil {
		return fmt.Errorf("saving cooldown window: %w", err)
	}
	return nil
}

func (p *Prospector) cooldownDays(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return p.defaultCooldownDays, nil
	}
	days, err := p.store.GetCooldownDays(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("loading cooldown window: %w", err)
	}
	if days == nil || !cooldown.Valid(*days) {
		return p.defaultCooldownDays, nil
	}
	return *days, nil
}

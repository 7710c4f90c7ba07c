package engine

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/donaldgifford/sale-prospector/internal/metrics"
	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// RecordAction stores the decision for a (sale, contact) pair. A later call
// for the same pair replaces it.
func (p *Prospector) RecordAction(
	ctx context.Context,
	saleID, contactID string,
	action domain.ActionStatus,
	userID string,
) (a *domain.SaleContactAction, err error) {
	ctx, end := startSpan(ctx, "engine.RecordAction",
		attribute.String("sale.id", saleID),
		attribute.String("contact.id", contactID),
		attribute.String("action", string(action)),
	)
	defer func() { end(err) }()

	if err := errors.Join(
		requireID("sale_id", saleID),
		requireID("contact_id", contactID),
		requireID("user_id", userID),
	); err != nil {
		return nil, err
	}
	if !action.Recordable() {
		return nil, domain.NewValidationError("action", "must be %q or %q (got %q)",
			domain.ActionContacted, domain.ActionIgnored, action)
	}

	a = &domain.SaleContactAction{
		SaleID:    saleID,
		ContactID: contactID,
		Action:    action,
		UserID:    userID,
	}
	if err := p.store.UpsertAction(ctx, a); err != nil {
		return nil, fmt.Errorf("recording %s for contact %s: %w", action, contactID, err)
	}

	metrics.ActionsRecordedTotal.WithLabelValues(string(action)).Inc()
	return a, nil
}

// UndoAction clears the decision for a pair. Clearing a pair without one is
// a no-op.
func (p *Prospector) UndoAction(ctx context.Context, saleID, contactID string) (err error) {
	ctx, end := startSpan(ctx, "engine.UndoAction",
		attribute.String("sale.id", saleID),
		attribute.String("contact.id", contactID),
	)
	defer func() { end(err) }()

	if err := errors.Join(requireID("sale_id", saleID), requireID("contact_id", contactID)); err != nil {
		return err
	}

	if err := p.store.DeleteAction(ctx, saleID, contactID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("undoing action for contact %s: %w", contactID, err)
	}

	metrics.ActionsUndoneTotal.Inc()
	return nil
}

// LogSMS records a sent message and advances the contact's last_sms_at.
// A zero SentAt is stamped with the current time.
func (p *Prospector) LogSMS(ctx context.Context, e *domain.SMSLogEntry) (err error) {
	ctx, end := startSpan(ctx, "engine.LogSMS",
		attribute.String("sale.id", e.SaleID),
		attribute.String("contact.id", e.ContactID),
	)
	defer func() { end(err) }()

	if err := errors.Join(requireID("sale_id", e.SaleID), requireID("contact_id", e.ContactID)); err != nil {
		return err
	}
	if e.SentAt.IsZero() {
		e.SentAt = p.now()
	}

	if err := p.store.LogSMS(ctx, e); err != nil {
		return fmt.Errorf("logging sms to contact %s: %w", e.ContactID, err)
	}

	metrics.SMSLoggedTotal.Inc()
	return nil
}

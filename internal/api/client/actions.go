package client

import (
	"context"
	"net/url"
	"time"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

func actionPath(saleID, contactID string) string {
	return "/api/v1/sales/" + url.PathEscape(saleID) + "/contacts/" + url.PathEscape(contactID) + "/action"
}

// RecordAction marks a contact as contacted or ignored for a sale.
func (c *Client) RecordAction(
	ctx context.Context,
	saleID, contactID string,
	action domain.ActionStatus,
) (*domain.SaleContactAction, error) {
	body := map[string]string{"action": string(action)}

	var a domain.SaleContactAction
	if err := c.put(ctx, actionPath(saleID, contactID), body, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// UndoAction clears the decision for a pair.
func (c *Client) UndoAction(ctx context.Context, saleID, contactID string) error {
	return c.del(ctx, actionPath(saleID, contactID), nil)
}

// LogSMS records a sent message. A zero sentAt lets the server stamp it.
func (c *Client) LogSMS(
	ctx context.Context,
	saleID, contactID, message string,
	sentAt time.Time,
) (*domain.SMSLogEntry, error) {
	body := map[string]any{
		"sale_id":    saleID,
		"contact_id": contactID,
	}
	if message != "" {
		body["message"] = message
	}
	if !sentAt.IsZero() {
		body["sent_at"] = sentAt.Format(time.RFC3339)
	}

	var e domain.SMSLogEntry
	if err := c.post(ctx, "/api/v1/sms-log", body, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

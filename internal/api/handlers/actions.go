package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// ActionService records and clears decisions on (sale, contact) pairs.
type ActionService interface {
	RecordAction(ctx context.Context, saleID, contactID string, action domain.ActionStatus, userID string) (*domain.SaleContactAction, error)
	UndoAction(ctx context.Context, saleID, contactID string) error
	LogSMS(ctx context.Context, e *domain.SMSLogEntry) error
}

// ActionsHandler handles action and SMS log requests.
type ActionsHandler struct {
	svc ActionService
}

// NewActionsHandler creates a new ActionsHandler.
func NewActionsHandler(svc ActionService) *ActionsHandler {
	return &ActionsHandler{svc: svc}
}

// PairInput addresses one (sale, contact) pair.
type PairInput struct {
	UserHeader
	SaleID    string `path:"id"         doc:"Sale UUID"`
	ContactID string `path:"contact_id" doc:"Contact UUID"`
}

// RecordActionInput is the request for recording an action.
type RecordActionInput struct {
	PairInput
	Body struct {
		Action string `json:"action" enum:"contacted,ignored" doc:"Decision for the pair"`
	}
}

// RecordActionOutput is the stored action.
type RecordActionOutput struct {
	Body *domain.SaleContactAction
}

// LogSMSInput is a message sent to a contact about a sale.
type LogSMSInput struct {
	UserHeader
	Body struct {
		SaleID    string    `json:"sale_id"           doc:"Sale UUID"`
		ContactID string    `json:"contact_id"        doc:"Contact UUID"`
		Message   string    `json:"message,omitempty" doc:"Message text"`
		SentAt    time.Time `json:"sent_at,omitempty" doc:"Send time (defaults to now)"`
	}
}

// LogSMSOutput is the stored log entry.
type LogSMSOutput struct {
	Body *domain.SMSLogEntry
}

// RecordAction stores a contacted or ignored decision for a pair.
func (h *ActionsHandler) RecordAction(ctx context.Context, input *RecordActionInput) (*RecordActionOutput, error) {
	a, err := h.svc.RecordAction(ctx, input.SaleID, input.ContactID,
		domain.ActionStatus(input.Body.Action), input.UserID)
	if err != nil {
		return nil, apiError("recording action", err)
	}
	return &RecordActionOutput{Body: a}, nil
}

// UndoAction clears the decision for a pair.
func (h *ActionsHandler) UndoAction(ctx context.Context, input *PairInput) (*struct{}, error) {
	if err := h.svc.UndoAction(ctx, input.SaleID, input.ContactID); err != nil {
		return nil, apiError("undoing action", err)
	}
	return nil, nil
}

// LogSMS records a sent message and advances the contact's last contact time.
func (h *ActionsHandler) LogSMS(ctx context.Context, input *LogSMSInput) (*LogSMSOutput, error) {
	e := &domain.SMSLogEntry{
		SaleID:    input.Body.SaleID,
		ContactID: input.Body.ContactID,
		UserID:    input.UserID,
		Message:   input.Body.Message,
		SentAt:    input.Body.SentAt,
	}
	if err := h.svc.LogSMS(ctx, e); err != nil {
		return nil, apiError("logging sms", err)
	}
	return &LogSMSOutput{Body: e}, nil
}

// RegisterActionRoutes registers action and SMS log endpoints with the Huma API.
func RegisterActionRoutes(api huma.API, h *ActionsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "record-action",
		Method:      http.MethodPut,
		Path:        "/api/v1/sales/{id}/contacts/{contact_id}/action",
		Summary:     "Record an action",
		Description: "Marks a contact as contacted or ignored for a sale. A later call replaces the earlier one.",
		Tags:        []string{"actions"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, h.RecordAction)

	huma.Register(api, huma.Operation{
		OperationID:   "undo-action",
		Method:        http.MethodDelete,
		Path:          "/api/v1/sales/{id}/contacts/{contact_id}/action",
		Summary:       "Undo an action",
		Description:   "Clears the decision for a pair. Clearing a pair without one succeeds.",
		Tags:          []string{"actions"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.UndoAction)

	huma.Register(api, huma.Operation{
		OperationID:   "log-sms",
		Method:        http.MethodPost,
		Path:          "/api/v1/sms-log",
		Summary:       "Log a sent SMS",
		Description:   "Records a message sent to a contact and advances their last contact time.",
		Tags:          []string{"actions"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, h.LogSMS)
}

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// SettingsService reads and writes per-user settings.
type SettingsService interface {
	CooldownDays(ctx context.Context, userID string) (int, error)
	SetCooldownDays(ctx context.Context, userID string, days int) error
}

// ProgressService aggregates prospecting counters.
type ProgressService interface {
	SuburbProgress(ctx context.Context, userID string, suburbs []string) ([]domain.SuburbProgress, error)
}

// SettingsHandler handles the cooldown setting and progress reports.
type SettingsHandler struct {
	settings SettingsService
	progress ProgressService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(s SettingsService, p ProgressService) *SettingsHandler {
	return &SettingsHandler{settings: s, progress: p}
}

// CooldownOutput is the user's cooldown window.
type CooldownOutput struct {
	Body struct {
		Days int `json:"days" example:"7"`
	}
}

// SetCooldownInput changes the user's cooldown window.
type SetCooldownInput struct {
	UserHeader
	Body struct {
		Days int `json:"days" example:"7" doc:"Days a contact stays on cooldown after an SMS (3, 7, 14 or 30)"`
	}
}

// SuburbProgressInput selects suburbs for the progress report.
type SuburbProgressInput struct {
	UserHeader
	Suburbs []string `query:"suburbs" doc:"Suburbs to report on (defaults to the user's favorites)"`
}

// SuburbProgressOutput holds per-suburb counters.
type SuburbProgressOutput struct {
	Body []domain.SuburbProgress
}

// GetCooldown returns the user's cooldown window.
func (h *SettingsHandler) GetCooldown(ctx context.Context, input *UserHeader) (*CooldownOutput, error) {
	days, err := h.settings.CooldownDays(ctx, input.UserID)
	if err != nil {
		return nil, apiError("loading cooldown", err)
	}
	resp := &CooldownOutput{}
	resp.Body.Days = days
	return resp, nil
}

// SetCooldown stores the user's cooldown window.
func (h *SettingsHandler) SetCooldown(ctx context.Context, input *SetCooldownInput) (*CooldownOutput, error) {
	if err := h.settings.SetCooldownDays(ctx, input.UserID, input.Body.Days); err != nil {
		return nil, apiError("saving cooldown", err)
	}
	resp := &CooldownOutput{}
	resp.Body.Days = input.Body.Days
	return resp, nil
}

// SuburbProgress returns action and message counters per suburb.
func (h *SettingsHandler) SuburbProgress(ctx context.Context, input *SuburbProgressInput) (*SuburbProgressOutput, error) {
	out, err := h.progress.SuburbProgress(ctx, input.UserID, input.Suburbs)
	if err != nil {
		return nil, apiError("computing progress", err)
	}
	return &SuburbProgressOutput{Body: out}, nil
}

// RegisterSettingsRoutes registers settings and progress endpoints with the Huma API.
func RegisterSettingsRoutes(api huma.API, h *SettingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-cooldown",
		Method:      http.MethodGet,
		Path:        "/api/v1/settings/cooldown",
		Summary:     "Get the cooldown window",
		Tags:        []string{"settings"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.GetCooldown)

	huma.Register(api, huma.Operation{
		OperationID: "set-cooldown",
		Method:      http.MethodPut,
		Path:        "/api/v1/settings/cooldown",
		Summary:     "Set the cooldown window",
		Description: "Allowed windows are 3, 7, 14 and 30 days.",
		Tags:        []string{"settings"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.SetCooldown)

	huma.Register(api, huma.Operation{
		OperationID: "suburb-progress",
		Method:      http.MethodGet,
		Path:        "/api/v1/progress/suburbs",
		Summary:     "Per-suburb progress",
		Description: "Sums contacted and ignored actions, messages sent and sales for each suburb.",
		Tags:        []string{"progress"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.SuburbProgress)
}

package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// UserHeader carries the acting user's ID. Writes and user-scoped reads
// reject requests without it.
type UserHeader struct {
	UserID string `header:"X-User-ID" doc:"ID of the acting user" example:"agent-42"`
}

// apiError maps a service error onto the HTTP status it stands for:
// missing records are 404, rejected input is 400 and anything else is 500.
func apiError(op string, err error) error {
	switch {
	case domain.IsValidation(err):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return huma.Error404NotFound(op + ": not found")
	default:
		return huma.Error500InternalServerError(op + " failed: " + err.Error())
	}
}

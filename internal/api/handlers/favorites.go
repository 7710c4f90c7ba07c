package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// FavoritesService manages a user's pinned suburbs.
type FavoritesService interface {
	ListFavorites(ctx context.Context, userID string) ([]domain.SuburbFavorite, error)
	AddFavorite(ctx context.Context, userID, suburb string) ([]domain.SuburbFavorite, error)
	RemoveFavorite(ctx context.Context, userID, suburb string) ([]domain.SuburbFavorite, error)
	ReorderFavorites(ctx context.Context, userID string, suburbs []string) ([]domain.SuburbFavorite, error)
}

// FavoritesHandler handles favorite suburb requests.
type FavoritesHandler struct {
	svc FavoritesService
}

// NewFavoritesHandler creates a new FavoritesHandler.
func NewFavoritesHandler(svc FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{svc: svc}
}

// FavoritesOutput is the user's favorite suburbs in display order.
type FavoritesOutput struct {
	Body []domain.SuburbFavorite
}

// AddFavoriteInput pins a suburb.
type AddFavoriteInput struct {
	UserHeader
	Body struct {
		Suburb string `json:"suburb" minLength:"1" doc:"Suburb to pin"`
	}
}

// RemoveFavoriteInput unpins a suburb.
type RemoveFavoriteInput struct {
	UserHeader
	Suburb string `path:"suburb" doc:"Suburb to unpin"`
}

// ReorderFavoritesInput is the complete list of pinned suburbs in the new order.
type ReorderFavoritesInput struct {
	UserHeader
	Body struct {
		Suburbs []string `json:"suburbs" doc:"Every pinned suburb, in the desired order"`
	}
}

// List returns the user's favorite suburbs.
func (h *FavoritesHandler) List(ctx context.Context, input *UserHeader) (*FavoritesOutput, error) {
	favs, err := h.svc.ListFavorites(ctx, input.UserID)
	if err != nil {
		return nil, apiError("listing favorites", err)
	}
	return &FavoritesOutput{Body: favs}, nil
}

// Add pins a suburb and returns the updated list.
func (h *FavoritesHandler) Add(ctx context.Context, input *AddFavoriteInput) (*FavoritesOutput, error) {
	favs, err := h.svc.AddFavorite(ctx, input.UserID, input.Body.Suburb)
	if err != nil {
		return nil, apiError("adding favorite", err)
	}
	return &FavoritesOutput{Body: favs}, nil
}

// Remove unpins a suburb and returns the updated list.
func (h *FavoritesHandler) Remove(ctx context.Context, input *RemoveFavoriteInput) (*FavoritesOutput, error) {
	favs, err := h.svc.RemoveFavorite(ctx, input.UserID, input.Suburb)
	if err != nil {
		return nil, apiError("removing favorite", err)
	}
	return &FavoritesOutput{Body: favs}, nil
}

// Reorder rewrites the display order and returns the updated list.
func (h *FavoritesHandler) Reorder(ctx context.Context, input *ReorderFavoritesInput) (*FavoritesOutput, error) {
	favs, err := h.svc.ReorderFavorites(ctx, input.UserID, input.Body.Suburbs)
	if err != nil {
		return nil, apiError("reordering favorites", err)
	}
	return &FavoritesOutput{Body: favs}, nil
}

// RegisterFavoriteRoutes registers favorite suburb endpoints with the Huma API.
func RegisterFavoriteRoutes(api huma.API, h *FavoritesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-favorites",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites",
		Summary:     "List favorite suburbs",
		Tags:        []string{"favorites"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "add-favorite",
		Method:      http.MethodPost,
		Path:        "/api/v1/favorites",
		Summary:     "Pin a suburb",
		Description: "Adds a suburb to the end of the list. At most five suburbs can be pinned.",
		Tags:        []string{"favorites"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Add)

	huma.Register(api, huma.Operation{
		OperationID: "reorder-favorites",
		Method:      http.MethodPut,
		Path:        "/api/v1/favorites/order",
		Summary:     "Reorder favorite suburbs",
		Tags:        []string{"favorites"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Reorder)

	huma.Register(api, huma.Operation{
		OperationID: "remove-favorite",
		Method:      http.MethodDelete,
		Path:        "/api/v1/favorites/{suburb}",
		Summary:     "Unpin a suburb",
		Tags:        []string{"favorites"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Remove)
}

package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/sale-prospector/internal/api/handlers"
	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

func newFavoritesAPI(t *testing.T, f *fakeProspector) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterFavoriteRoutes(api, handlers.NewFavoritesHandler(f))
	return api
}

func TestFavorites_List(t *testing.T) {
	t.Parallel()

	f := &fakeProspector{
		listFavorites: func(userID string) ([]domain.SuburbFavorite, error) {
			if userID == "" {
				return nil, domain.NewValidationError("user_id", "is required")
			}
			return favorites("Eastside", "Northgate"), nil
		},
	}
	api := newFavoritesAPI(t, f)

	resp := api.Get("/api/v1/favorites", userHeader)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Northgate")

	resp = api.Get("/api/v1/favorites")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestFavorites_Add(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		current    []string
		wantStatus int
		wantBody   string
	}{
		{name: "appends", current: []string{"Eastside"}, wantStatus: http.StatusOK, wantBody: "Westfield"},
		{
			name:       "limit reached",
			current:    []string{"A", "B", "C", "D", "E"},
			wantStatus: http.StatusBadRequest,
			wantBody:   "at most 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := &fakeProspector{
				addFavorite: func(_, suburb string) ([]domain.SuburbFavorite, error) {
					if len(tt.current) >= domain.MaxFavorites {
						return nil, domain.NewValidationError("suburb", "at most %d favorite suburbs allowed", domain.MaxFavorites)
					}
					return favorites(append(tt.current, suburb)...), nil
				},
			}

			resp := newFavoritesAPI(t, f).Post("/api/v1/favorites", userHeader, map[string]any{"suburb": "Westfield"})
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestFavorites_Remove(t *testing.T) {
	t.Parallel()

	f := &fakeProspector{
		removeFavorite: func(_, suburb string) ([]domain.SuburbFavorite, error) {
			assert.Equal(t, "Northgate", suburb)
			return favorites("Eastside"), nil
		},
	}

	resp := newFavoritesAPI(t, f).Delete("/api/v1/favorites/Northgate", userHeader)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotContains(t, resp.Body.String(), "Northgate")
}

func TestFavorites_Reorder(t *testing.T) {
	t.Parallel()

	f := &fakeProspector{
		reorderFavorites: func(_ string, suburbs []string) ([]domain.SuburbFavorite, error) {
			if len(suburbs) != 2 {
				return nil, domain.NewValidationError("suburbs", "must list all 2 favorite suburbs (got %d)", len(suburbs))
			}
			return favorites(suburbs...), nil
		},
	}
	api := newFavoritesAPI(t, f)

	resp := api.Put("/api/v1/favorites/order", userHeader, map[string]any{"suburbs": []string{"Northgate", "Eastside"}})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"suburb":"Northgate","position":0`)

	resp = api.Put("/api/v1/favorites/order", userHeader, map[string]any{"suburbs": []string{"Eastside"}})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

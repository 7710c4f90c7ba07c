package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/sale-prospector/internal/api/handlers"
	"github.com/donaldgifford/sale-prospector/pkg/cooldown"
	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

func newSettingsAPI(t *testing.T, f *fakeProspector) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterSettingsRoutes(api, handlers.NewSettingsHandler(f, f))
	return api
}

func TestGetCooldown(t *testing.T) {
	t.Parallel()

	f := &fakeProspector{
		cooldownDays: func(string) (int, error) { return 14, nil },
	}

	resp := newSettingsAPI(t, f).Get("/api/v1/settings/cooldown", userHeader)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"days":14`)
}

func TestSetCooldown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		days       int
		wantStatus int
	}{
		{name: "three", days: 3, wantStatus: http.StatusOK},
		{name: "thirty", days: 30, wantStatus: http.StatusOK},
		{name: "not an allowed window", days: 10, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := &fakeProspector{
				setCooldownDays: func(_ string, days int) error {
					if !cooldown.Valid(days) {
						return domain.NewValidationError("days", "must be one of %v (got %d)", cooldown.AllowedDays, days)
					}
					return nil
				},
			}

			resp := newSettingsAPI(t, f).Put("/api/v1/settings/cooldown", userHeader, map[string]any{"days": tt.days})
			assert.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
		})
	}
}

func TestSuburbProgress(t *testing.T) {
	t.Parallel()

	t.Run("requested suburbs", func(t *testing.T) {
		t.Parallel()

		f := &fakeProspector{
			suburbProgress: func(userID string, suburbs []string) ([]domain.SuburbProgress, error) {
				assert.Equal(t, "agent-1", userID)
				assert.Equal(t, []string{"Eastside", "Northgate"}, suburbs)
				return []domain.SuburbProgress{
					{Suburb: "Eastside", Sales: 4, Contacted: 12, Ignored: 3, MessagesSent: 15},
					{Suburb: "Northgate", Sales: 1},
				}, nil
			},
		}

		resp := newSettingsAPI(t, f).Get("/api/v1/progress/suburbs?suburbs=Eastside,Northgate", userHeader)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"messages_sent":15`)
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		f := &fakeProspector{
			suburbProgress: func(string, []string) ([]domain.SuburbProgress, error) {
				return nil, errors.New("db down")
			},
		}

		resp := newSettingsAPI(t, f).Get("/api/v1/progress/suburbs", userHeader)
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}

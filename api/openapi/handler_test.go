package openapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingOutput struct {
	Body struct {
		Pong bool `json:"pong"`
	}
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	cfg := huma.DefaultConfig("Sale Prospector API", "test")
	cfg.DocsPath = ""
	api := humaecho.New(e, cfg)

	RegisterRoutes(e, api)

	// Registered after the swagger routes; must still appear in the document.
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/api/v1/ping",
	}, func(_ context.Context, _ *struct{}) (*pingOutput, error) {
		return &pingOutput{}, nil
	})

	return e
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		path        string
		wantStatus  int
		wantType    string
		wantContain string
	}{
		{name: "json spec", path: "/swagger/swagger.json", wantStatus: http.StatusOK, wantType: "application/json", wantContain: `"/api/v1/ping"`},
		{name: "yaml spec", path: "/swagger/swagger.yaml", wantStatus: http.StatusOK, wantType: "text/yaml", wantContain: "/api/v1/ping:"},
		{name: "ui", path: "/swagger/index.html", wantStatus: http.StatusOK, wantType: "text/html", wantContain: "swagger-ui"},
		{name: "redirect", path: "/swagger", wantStatus: http.StatusMovedPermanently},
		{name: "redirect slash", path: "/swagger/", wantStatus: http.StatusMovedPermanently},
	}

	e := newTestEcho(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusMovedPermanently {
				assert.Equal(t, "/swagger/index.html", rec.Header().Get("Location"))
				return
			}
			assert.Contains(t, rec.Header().Get("Content-Type"), tt.wantType)
			assert.Contains(t, rec.Body.String(), tt.wantContain)
			assert.Contains(t, rec.Body.String(), "Sale Prospector API")
		})
	}
}

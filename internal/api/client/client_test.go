package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListFavorites(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"title":"Not Found","status":404}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetSale(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 404)")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestClient_SendsUserHeader(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "agent-1", r.Header.Get("X-User-ID"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"days":14}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithUserID("agent-1"))
	days, err := c.GetCooldown(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 14, days)
}

func TestClient_ListSales(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    *ListSalesParams
		wantQuery string
	}{
		{name: "no params", params: nil, wantQuery: ""},
		{
			name:      "filters",
			params:    &ListSalesParams{DateRange: "30d", PriceBand: "under500k", MinBedrooms: 3, Offset: 20, Favorites: true},
			wantQuery: "date_range=30d&favorites=true&min_bedrooms=3&offset=20&price_band=under500k",
		},
		{
			name:      "custom range and search",
			params:    &ListSalesParams{DateRange: "custom", Start: "2026-01-01", Query: "main st"},
			wantQuery: "date_range=custom&q=main+st&start=2026-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/sales", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(domain.SalePage{
					Sales: []domain.SaleSummary{{Sale: domain.Sale{ID: "s1"}, OpportunityCount: 4}},
					Total: 1,
				})
			}))
			defer srv.Close()

			page, err := New(srv.URL).ListSales(context.Background(), tt.params)
			require.NoError(t, err)
			require.Len(t, page.Sales, 1)
			assert.Equal(t, 4, page.Sales[0].OpportunityCount)
		})
	}
}

func TestClient_GetFeed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sales/s1/feed", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.Feed{
			Sale:         domain.Sale{ID: "s1"},
			CooldownDays: 7,
			Groups: domain.FeedGroups{
				Hot: []domain.Opportunity{{SaleID: "s1", Contact: domain.Contact{ID: "c1"}, SameStreet: true}},
			},
			Progress: domain.SaleProgress{Total: 1, Remaining: 1},
		})
	}))
	defer srv.Close()

	f, err := New(srv.URL).GetFeed(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, f.Groups.Hot, 1)
	assert.Equal(t, "c1", f.Groups.Hot[0].Contact.ID)
	assert.Equal(t, 1, f.Progress.Remaining)
}

func TestClient_CompleteSale(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/sales/s1/complete", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sale_id":"s1","resolved":3}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL).CompleteSale(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Resolved)
}

func TestClient_RecordAndUndoAction(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sales/s1/contacts/c1/action", r.URL.Path)

		switch r.Method {
		case http.MethodPut:
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ignored", body["action"])
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(domain.SaleContactAction{SaleID: "s1", ContactID: "c1", Action: domain.ActionIgnored})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)

	a, err := c.RecordAction(context.Background(), "s1", "c1", domain.ActionIgnored)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionIgnored, a.Action)

	require.NoError(t, c.UndoAction(context.Background(), "s1", "c1"))
}

func TestClient_LogSMS(t *testing.T) {
	t.Parallel()

	sentAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sms-log", r.URL.Path)
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2026-03-10T09:00:00Z", body["sent_at"])
		assert.Equal(t, "c1", body["contact_id"])
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"sms-1","sale_id":"s1","contact_id":"c1","sent_at":"2026-03-10T09:00:00Z"}`))
	}))
	defer srv.Close()

	e, err := New(srv.URL).LogSMS(context.Background(), "s1", "c1", "", sentAt)
	require.NoError(t, err)
	assert.Equal(t, "sms-1", e.ID)
}

func TestClient_Favorites(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.EscapedPath()
		gotBody = nil
		if r.Body != nil && r.ContentLength > 0 {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"suburb":"Eastside","position":0}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	_, err := c.AddFavorite(ctx, "Eastside")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "Eastside", gotBody["suburb"])

	_, err = c.RemoveFavorite(ctx, "North Gate")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v1/favorites/North%20Gate", gotPath)

	favs, err := c.ReorderFavorites(ctx, []string{"Eastside"})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/favorites/order", gotPath)
	assert.Equal(t, []any{"Eastside"}, gotBody["suburbs"])
	assert.Equal(t, "Eastside", favs[0].Suburb)
}

func TestClient_SuburbProgress(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Eastside,Northgate", r.URL.Query().Get("suburbs"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"suburb":"Eastside","sales":2,"contacted":5}]`))
	}))
	defer srv.Close()

	out, err := New(srv.URL).SuburbProgress(context.Background(), []string{"Eastside", "Northgate"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 5, out[0].Contacted)
}

func TestClient_Jobs(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/jobs/geocode_backfill":
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`[{"id":"r1","job_name":"geocode_backfill","status":"failed"}]`))
		case "/api/v1/geocode/run":
			assert.Equal(t, http.MethodPost, r.Method)
			_, _ = w.Write([]byte(`{"status":"geocode backfill completed","sales_geocoded":2}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)

	runs, err := c.GetJobHistory(context.Background(), "geocode_backfill", 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "failed", runs[0].Status)

	res, err := c.RunGeocode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.SalesGeocoded)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}

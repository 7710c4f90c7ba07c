package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/sale-prospector/internal/metrics"
)

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "sale-prospector/1.0"
)

// NominatimClient implements Geocoder against a Nominatim-compatible
// /search endpoint.
type NominatimClient struct {
	baseURL     string
	userAgent   string
	email       string
	client      *http.Client
	rateLimiter *RateLimiter
}

// Option configures the NominatimClient.
type Option func(*NominatimClient)

// WithBaseURL overrides the default service endpoint.
func WithBaseURL(u string) Option {
	return func(c *NominatimClient) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithUserAgent sets the User-Agent header sent with every lookup.
func WithUserAgent(ua string) Option {
	return func(c *NominatimClient) {
		c.userAgent = ua
	}
}

// WithEmail sets the contact email passed to the service.
func WithEmail(e string) Option {
	return func(c *NominatimClient) {
		c.email = e
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *NominatimClient) {
		c.client = hc
	}
}

// WithRateLimiter makes every lookup wait on r first.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *NominatimClient) {
		c.rateLimiter = r
	}
}

// NewNominatimClient creates a new geocoding client.
func NewNominatimClient(opts ...Option) *NominatimClient {
	c := &NominatimClient{
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode implements Geocoder.
func (c *NominatimClient) Geocode(ctx context.Context, req Request) (*Point, error) {
	if strings.TrimSpace(req.Address) == "" {
		return nil, fmt.Errorf("geocoding: empty address: %w", ErrNoResult)
	}

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.GeocodeDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.GeocodeDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}
	metrics.GeocodeCallsTotal.Inc()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(req), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing geocode request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API error (status %d): %s", resp.StatusCode, string(body))
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("parsing geocode response: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrNoResult
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing latitude %q: %w", results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing longitude %q: %w", results[0].Lon, err)
	}

	return &Point{Lat: lat, Lng: lng}, nil
}

func (c *NominatimClient) searchURL(req Request) string {
	parts := []string{strings.TrimSpace(req.Address)}
	for _, p := range []string{req.Suburb, req.City, req.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	params := url.Values{}
	params.Set("q", strings.Join(parts, ", "))
	params.Set("format", "jsonv2")
	params.Set("limit", "1")
	if c.email != "" {
		params.Set("email", c.email)
	}

	return c.baseURL + "/search?" + params.Encode()
}

// Package main implements a mock Nominatim server for local development.
// It answers /search lookups from a JSON fixture of known places so the
// geocode backfill can run without hitting the public service.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

type place struct {
	PlaceID     int64  `json:"place_id"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/places.json", "path to places fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	places, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "places", len(places))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /search", searchHandler(logger, places))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock nominatim server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) ([]place, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var places []place
	if err := json.Unmarshal(data, &places); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return places, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// queryTerms splits a free-form query into lowercase comma-separated parts.
func queryTerms(q string) []string {
	var terms []string
	for _, part := range strings.Split(strings.ToLower(q), ",") {
		if part = strings.TrimSpace(part); part != "" {
			terms = append(terms, part)
		}
	}
	return terms
}

func matches(name string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(name, t) {
			return false
		}
	}
	return true
}

func searchHandler(logger *slog.Logger, places []place) http.HandlerFunc {
	names := make([]string, len(places))
	for i, p := range places {
		names[i] = strings.ToLower(p.DisplayName)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		// The public service rejects anonymous clients.
		if r.Header.Get("User-Agent") == "" {
			logger.Warn("search request missing User-Agent")
			http.Error(w, "missing User-Agent", http.StatusForbidden)
			return
		}

		q := r.URL.Query().Get("q")
		terms := queryTerms(q)

		limit := 10
		if r.URL.Query().Get("limit") == "1" {
			limit = 1
		}

		matched := []place{}
		if len(terms) > 0 {
			for i, p := range places {
				if matches(names[i], terms) {
					matched = append(matched, p)
					if len(matched) == limit {
						break
					}
				}
			}
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(matched)
		logger.Info("search", "query", q, "matched", len(matched))
	}
}

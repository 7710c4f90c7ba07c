// Package geocode resolves street addresses to coordinates through an HTTP
// geocoding service, abstracted behind an interface for testability.
package geocode

import (
	"context"
	"errors"
)

// ErrNoResult is returned when the service has no match for an address.
var ErrNoResult = errors.New("no geocoding result")

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64
	Lng float64
}

// Request describes one address lookup.
type Request struct {
	Address string
	Suburb  string
	City    string
	Country string
}

// Geocoder defines the interface for resolving addresses to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, req Request) (*Point, error)
}

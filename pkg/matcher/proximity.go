package matcher

import (
	"math"
	"regexp"
	"strconv"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// metersPerHouseNumber is the crude frontage estimate between adjacent numbers.
const metersPerHouseNumber = 10

const earthRadiusMeters = 6371000.0

var streetNumberRe = regexp.MustCompile(`^\s*(\d+)`)

// ParseStreetNumber returns the leading integer of s, or nil when s does not
// start with digits.
func ParseStreetNumber(s string) *int {
	m := streetNumberRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

// saleStreetNumber prefers the explicit street number and falls back to the
// full address.
func saleStreetNumber(s *domain.Sale) *int {
	if n := ParseStreetNumber(s.StreetNumber); n != nil {
		return n
	}
	return ParseStreetNumber(s.Address)
}

// ProximityEstimator estimates the distance in meters between a sale and a
// contact. A nil result means the distance is unknown.
type ProximityEstimator interface {
	Estimate(sale *domain.Sale, contact *domain.Contact, sameStreet bool) *float64
}

// HeuristicEstimator derives distance from house-number arithmetic on the
// same street.
type HeuristicEstimator struct{}

// Estimate implements ProximityEstimator.
func (HeuristicEstimator) Estimate(sale *domain.Sale, contact *domain.Contact, sameStreet bool) *float64 {
	if !sameStreet {
		return nil
	}
	saleNum := saleStreetNumber(sale)
	contactNum := ParseStreetNumber(contact.Address)
	if saleNum == nil || contactNum == nil {
		return nil
	}
	d := math.Abs(float64(*saleNum-*contactNum)) * metersPerHouseNumber
	return &d
}

// HaversineEstimator returns the great-circle distance when both sides are
// geocoded.
type HaversineEstimator struct{}

// Estimate implements ProximityEstimator.
func (HaversineEstimator) Estimate(sale *domain.Sale, contact *domain.Contact, _ bool) *float64 {
	if !sale.Geocoded() || !contact.Geocoded() {
		return nil
	}
	d := Haversine(*sale.Latitude, *sale.Longitude, *contact.Latitude, *contact.Longitude)
	return &d
}

// DefaultEstimator picks haversine per pair when coordinates are available on
// both sides, and the house-number heuristic otherwise.
type DefaultEstimator struct {
	Heuristic HeuristicEstimator
	Haversine HaversineEstimator
}

// Estimate implements ProximityEstimator.
func (e DefaultEstimator) Estimate(sale *domain.Sale, contact *domain.Contact, sameStreet bool) *float64 {
	if sale.Geocoded() && contact.Geocoded() {
		return e.Haversine.Estimate(sale, contact, sameStreet)
	}
	return e.Heuristic.Estimate(sale, contact, sameStreet)
}

// Haversine returns the distance in meters between two WGS84 points.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
}

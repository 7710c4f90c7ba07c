package domain

import (
	"strings"
	"time"
)

// DateRange is a preset window over sale dates.
type DateRange string

// Date range presets.
const (
	DateRange7d     DateRange = "7d"
	DateRange30d    DateRange = "30d"
	DateRange90d    DateRange = "90d"
	DateRangeAll    DateRange = "all"
	DateRangeCustom DateRange = "custom"
)

var presetDays = map[DateRange]int{
	DateRange7d:  7,
	DateRange30d: 30,
	DateRange90d: 90,
}

// PriceBand is a preset bucket over sale prices.
type PriceBand string

// Price band presets. Bounds are inclusive on the middle band.
const (
	PriceAny       PriceBand = "any"
	PriceUnder500k PriceBand = "under500k"
	Price500kTo1m  PriceBand = "500k-1m"
	PriceOver1m    PriceBand = "over1m"
)

// Price band boundaries in whole currency units.
const (
	PriceBandLow  = 500000
	PriceBandHigh = 1000000
)

// SaleFilter holds the AND-combined predicates for listing sales.
type SaleFilter struct {
	DateRange   DateRange
	Start       *time.Time
	End         *time.Time
	PriceBand   PriceBand
	Suburb      string
	Suburbs     []string
	MinBedrooms *int
	Query       string
	Offset      int
}

// Validate rejects unknown presets and malformed custom ranges.
func (f *SaleFilter) Validate() error {
	switch f.DateRange {
	case "", DateRange7d, DateRange30d, DateRange90d, DateRangeAll:
	case DateRangeCustom:
		if f.Start == nil && f.End == nil {
			return NewValidationError("date_range", "custom range requires a start or end date")
		}
		if f.Start != nil && f.End != nil && f.End.Before(*f.Start) {
			return NewValidationError("end", "end date %s is before start date %s",
				f.End.Format(time.DateOnly), f.Start.Format(time.DateOnly))
		}
	default:
		return NewValidationError("date_range", "unknown date range %q", f.DateRange)
	}

	switch f.PriceBand {
	case "", PriceAny, PriceUnder500k, Price500kTo1m, PriceOver1m:
	default:
		return NewValidationError("price_band", "unknown price band %q", f.PriceBand)
	}

	if f.MinBedrooms != nil && *f.MinBedrooms < 0 {
		return NewValidationError("min_bedrooms", "must not be negative")
	}
	if f.Offset < 0 {
		return NewValidationError("offset", "must not be negative")
	}
	return nil
}

// DateBounds resolves the filter's date range into inclusive calendar-day
// bounds relative to now. A nil bound is open.
func (f *SaleFilter) DateBounds(now time.Time) (from, to *time.Time) {
	if days, ok := presetDays[f.DateRange]; ok {
		d := startOfDay(now).AddDate(0, 0, -days)
		return &d, nil
	}
	if f.DateRange != DateRangeCustom {
		return nil, nil
	}
	if f.Start != nil {
		d := startOfDay(*f.Start)
		from = &d
	}
	if f.End != nil {
		d := startOfDay(*f.End)
		to = &d
	}
	return from, to
}

// SearchText returns the trimmed free-text query.
func (f *SaleFilter) SearchText() string {
	return strings.TrimSpace(f.Query)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

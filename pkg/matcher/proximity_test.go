package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

func TestParseStreetNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  *int
	}{
		{name: "plain", input: "12 Main St", want: ptr(12)},
		{name: "leading spaces", input: "   7 Elm Rd", want: ptr(7)},
		{name: "unit suffix", input: "14A Beach Rd", want: ptr(14)},
		{name: "number only", input: "305", want: ptr(305)},
		{name: "no leading digits", input: "Unit 3, 5 High St", want: nil},
		{name: "empty", input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseStreetNumber(tt.input))
		})
	}
}

func TestHeuristicEstimator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sale       domain.Sale
		address    string
		sameStreet bool
		want       *float64
	}{
		{
			name:       "street number field",
			sale:       domain.Sale{StreetNumber: "12", Address: "99 Main St"},
			address:    "10 Main St",
			sameStreet: true,
			want:       ptr(20.0),
		},
		{
			name:       "falls back to address",
			sale:       domain.Sale{Address: "12 Main St"},
			address:    "30 Main St",
			sameStreet: true,
			want:       ptr(180.0),
		},
		{
			name:       "different street",
			sale:       domain.Sale{StreetNumber: "12"},
			address:    "10 Other Ave",
			sameStreet: false,
			want:       nil,
		},
		{
			name:       "contact number missing",
			sale:       domain.Sale{StreetNumber: "12"},
			address:    "Main St",
			sameStreet: true,
			want:       nil,
		},
		{
			name:       "sale number missing",
			sale:       domain.Sale{Address: "Main St"},
			address:    "10 Main St",
			sameStreet: true,
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := domain.Contact{Address: tt.address}
			got := HeuristicEstimator{}.Estimate(&tt.sale, &c, tt.sameStreet)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 0.0001)
		})
	}
}

func TestHaversine(t *testing.T) {
	t.Parallel()

	// Opera House to the southern end of the Harbour Bridge, about 650 m.
	d := Haversine(-33.8568, 151.2153, -33.8523, 151.2108)
	assert.InDelta(t, 650, d, 100)

	assert.InDelta(t, 0, Haversine(10, 10, 10, 10), 0.0001)
}

func TestDefaultEstimator_SelectsPerPair(t *testing.T) {
	t.Parallel()

	sale := domain.Sale{
		Address:   "12 Main St",
		Latitude:  ptr(-33.8568),
		Longitude: ptr(151.2153),
	}
	geocoded := domain.Contact{Address: "10 Main St", Latitude: ptr(-33.8568), Longitude: ptr(151.2153)}
	plain := domain.Contact{Address: "10 Main St"}

	e := DefaultEstimator{}

	got := e.Estimate(&sale, &geocoded, true)
	require.NotNil(t, got)
	assert.InDelta(t, 0, *got, 0.0001, "same coordinates use haversine")

	got = e.Estimate(&sale, &plain, true)
	require.NotNil(t, got)
	assert.InDelta(t, 20, *got, 0.0001, "missing coordinates fall back to house numbers")

	got = e.Estimate(&sale, &geocoded, false)
	require.NotNil(t, got, "haversine applies across streets")
}

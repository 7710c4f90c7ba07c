package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

func ptr[T any](v T) *T { return &v }

var queryNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func TestSaleQuery_ToSQL(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		query         SaleQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string // substrings that must appear in dataSQL
		wantDataNotIn []string // substrings that must NOT appear
	}{
		{
			name:  "empty query uses defaults",
			query: SaleQuery{},
			wantDataHas: []string{
				"FROM sales s",
				"opportunity_count",
				"ORDER BY s.sale_date DESC NULLS LAST, s.id",
				"LIMIT 20",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM sales s",
			wantArgs:      nil,
		},
		{
			name:         "seven day preset",
			query:        SaleQuery{domain.SaleFilter{DateRange: domain.DateRange7d}},
			wantDataHas:  []string{"WHERE s.sale_date >= $1"},
			wantCountSQL: "SELECT COUNT(*) FROM sales s WHERE s.sale_date >= $1",
			wantArgs:     []any{time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:          "all dates adds no predicate",
			query:         SaleQuery{domain.SaleFilter{DateRange: domain.DateRangeAll}},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM sales s",
		},
		{
			name: "custom range is inclusive on calendar days",
			query: SaleQuery{domain.SaleFilter{
				DateRange: domain.DateRangeCustom, Start: &start, End: &end,
			}},
			wantCountSQL: "SELECT COUNT(*) FROM sales s WHERE s.sale_date >= $1 AND s.sale_date <= $2",
			wantArgs: []any{
				time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:         "under 500k",
			query:        SaleQuery{domain.SaleFilter{PriceBand: domain.PriceUnder500k}},
			wantCountSQL: "SELECT COUNT(*) FROM sales s WHERE s.sale_price < 500000",
		},
		{
			name:         "500k to 1m inclusive",
			query:        SaleQuery{domain.SaleFilter{PriceBand: domain.Price500kTo1m}},
			wantCountSQL: "SELECT COUNT(*) FROM sales s WHERE s.sale_price BETWEEN 500000 AND 1000000",
		},
		{
			name:         "over 1m",
			query:        SaleQuery{domain.SaleFilter{PriceBand: domain.PriceOver1m}},
			wantCountSQL: "SELECT COUNT(*) FROM sales s WHERE s.sale_price > 1000000",
		},
		{
			name:          "any price adds no predicate",
			query:         SaleQuery{domain.SaleFilter{PriceBand: domain.PriceAny}},
			wantDataNotIn: []string{"sale_price <", "sale_price >", "BETWEEN"},
			wantCountSQL:  "SELECT COUNT(*) FROM sales s",
		},
		{
			name:         "suburb ignores case and padding",
			query:        SaleQuery{domain.SaleFilter{Suburb: " Eastside "}},
			wantCountSQL: "SELECT COUNT(*) FROM sales s WHERE LOWER(TRIM(s.suburb)) = LOWER(TRIM($1))",
			wantArgs:     []any{"Eastside"},
		},
		{
			name:         "favorite suburbs",
			query:        SaleQuery{domain.SaleFilter{Suburbs: []string{"Eastside", "WESTSIDE"}}},
			wantCountSQL: "SELECT COUNT(*) FROM sales s WHERE LOWER(TRIM(s.suburb)) = ANY($1)",
			wantArgs:     []any{[]string{"eastside", "westside"}},
		},
		{
			name: "explicit suburb wins over favorites",
			query: SaleQuery{domain.SaleFilter{
				Suburb: "Northside", Suburbs: []string{"Eastside"},
			}},
			wantCountSQL: "SELECT COUNT(*) FROM sales s WHERE LOWER(TRIM(s.suburb)) = LOWER(TRIM($1))",
			wantArgs:     []any{"Northside"},
		},
		{
			name:         "min bedrooms",
			query:        SaleQuery{domain.SaleFilter{MinBedrooms: ptr(3)}},
			wantCountSQL: "SELECT COUNT(*) FROM sales s WHERE s.bedrooms >= $1",
			wantArgs:     []any{3},
		},
		{
			name:        "free text escapes wildcards",
			query:       SaleQuery{domain.SaleFilter{Query: " 50%_off "}},
			wantDataHas: []string{"s.address ILIKE $1", "s.suburb ILIKE $1"},
			wantArgs:    []any{`%50\%\_off%`},
		},
		{
			name: "combined filters AND together in order",
			query: SaleQuery{domain.SaleFilter{
				DateRange:   domain.DateRange30d,
				PriceBand:   domain.PriceOver1m,
				Suburb:      "Eastside",
				MinBedrooms: ptr(2),
				Query:       "main",
				Offset:      40,
			}},
			wantDataHas: []string{
				"s.sale_date >= $1 AND s.sale_price > 1000000 AND LOWER(TRIM(s.suburb)) = LOWER(TRIM($2)) AND s.bedrooms >= $3 AND (s.address ILIKE $4",
				"LIMIT 20 OFFSET 40",
			},
			wantArgs: []any{
				time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC),
				"Eastside",
				2,
				"%main%",
			},
		},
		{
			name:        "negative offset clamps to zero",
			query:       SaleQuery{domain.SaleFilter{Offset: -5}},
			wantDataHas: []string{"OFFSET 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL(queryNow)

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s)
			}
			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s)
			}
			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

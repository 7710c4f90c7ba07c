package store

import (
	"fmt"
	"strings"
	"time"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

const baseSalesSelect = `SELECT s.id, s.address, s.suburb, COALESCE(s.city, ''),
	s.sale_price, s.sale_date, COALESCE(s.property_type, ''), s.bedrooms,
	COALESCE(s.street_name, ''), COALESCE(s.street_number, ''),
	s.latitude, s.longitude, s.created_at,
	COALESCE(cc.n, 0) AS opportunity_count
FROM sales s
LEFT JOIN (
	SELECT LOWER(TRIM(address_suburb)) AS suburb_key, COUNT(*) AS n
	FROM contacts
	GROUP BY 1
) cc ON cc.suburb_key = LOWER(TRIM(s.suburb))`

const countSalesSelect = "SELECT COUNT(*) FROM sales s"

const salesOrderBy = "s.sale_date DESC NULLS LAST, s.id"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a sale query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters. Relative date presets resolve against now.
func (q *SaleQuery) ToSQL(now time.Time) (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	from, to := q.DateBounds(now)
	if from != nil {
		conditions = append(conditions, fmt.Sprintf("s.sale_date >= $%d", paramIdx))
		args = append(args, *from)
		paramIdx++
	}
	if to != nil {
		conditions = append(conditions, fmt.Sprintf("s.sale_date <= $%d", paramIdx))
		args = append(args, *to)
		paramIdx++
	}

	switch q.PriceBand {
	case domain.PriceUnder500k:
		conditions = append(conditions, fmt.Sprintf("s.sale_price < %d", domain.PriceBandLow))
	case domain.Price500kTo1m:
		conditions = append(conditions, fmt.Sprintf(
			"s.sale_price BETWEEN %d AND %d", domain.PriceBandLow, domain.PriceBandHigh,
		))
	case domain.PriceOver1m:
		conditions = append(conditions, fmt.Sprintf("s.sale_price > %d", domain.PriceBandHigh))
	}

	if suburb := strings.TrimSpace(q.Suburb); suburb != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(TRIM(s.suburb)) = LOWER(TRIM($%d))", paramIdx))
		args = append(args, suburb)
		paramIdx++
	} else if len(q.Suburbs) > 0 {
		lowered := make([]string, len(q.Suburbs))
		for i, sb := range q.Suburbs {
			lowered[i] = domain.NormalizeSuburb(sb)
		}
		conditions = append(conditions, fmt.Sprintf("LOWER(TRIM(s.suburb)) = ANY($%d)", paramIdx))
		args = append(args, lowered)
		paramIdx++
	}

	if q.MinBedrooms != nil {
		conditions = append(conditions, fmt.Sprintf("s.bedrooms >= $%d", paramIdx))
		args = append(args, *q.MinBedrooms)
		paramIdx++
	}

	if text := q.SearchText(); text != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(s.address ILIKE $%[1]d ESCAPE '\\' OR s.suburb ILIKE $%[1]d ESCAPE '\\')", paramIdx,
		))
		args = append(args, "%"+likeEscaper.Replace(text)+"%")
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseSalesSelect, whereClause, salesOrderBy, domain.SalePageSize, offset,
	)

	countSQL = countSalesSelect + whereClause

	return dataSQL, countSQL, args
}

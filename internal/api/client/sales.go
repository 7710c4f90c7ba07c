package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// ListSalesParams defines query parameters for sale listings.
type ListSalesParams struct {
	DateRange   string
	Start       string
	End         string
	PriceBand   string
	Suburb      string
	MinBedrooms int
	Query       string
	Offset      int
	Favorites   bool
}

func (p *ListSalesParams) values() url.Values {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("date_range", p.DateRange)
	set("start", p.Start)
	set("end", p.End)
	set("price_band", p.PriceBand)
	set("suburb", p.Suburb)
	set("q", p.Query)
	if p.MinBedrooms > 0 {
		q.Set("min_bedrooms", strconv.Itoa(p.MinBedrooms))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Favorites {
		q.Set("favorites", "true")
	}
	return q
}

// CompleteResult reports how many opportunities a completion resolved.
type CompleteResult struct {
	SaleID   string `json:"sale_id"`
	Resolved int    `json:"resolved"`
}

// ListSales returns one page of sales matching params.
func (c *Client) ListSales(ctx context.Context, params *ListSalesParams) (*domain.SalePage, error) {
	path := "/api/v1/sales"
	if params != nil {
		if q := params.values(); len(q) > 0 {
			path += "?" + q.Encode()
		}
	}

	var page domain.SalePage
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetSale returns a single sale by ID.
func (c *Client) GetSale(ctx context.Context, id string) (*domain.Sale, error) {
	var sale domain.Sale
	if err := c.get(ctx, "/api/v1/sales/"+url.PathEscape(id), &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// GetFeed returns the grouped opportunity feed for a sale.
func (c *Client) GetFeed(ctx context.Context, saleID string) (*domain.Feed, error) {
	var f domain.Feed
	if err := c.get(ctx, "/api/v1/sales/"+url.PathEscape(saleID)+"/feed", &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// CompleteSale marks every remaining opportunity of a sale as ignored.
func (c *Client) CompleteSale(ctx context.Context, saleID string) (*CompleteResult, error) {
	var res CompleteResult
	if err := c.post(ctx, "/api/v1/sales/"+url.PathEscape(saleID)+"/complete", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// SalesService is the part of the prospector the sale endpoints use.
type SalesService interface {
	ListSales(ctx context.Context, filter domain.SaleFilter, userID string, favoritesOnly bool) (*domain.SalePage, error)
	GetSale(ctx context.Context, id string) (*domain.Sale, error)
	Feed(ctx context.Context, saleID, userID string) (*domain.Feed, error)
	MarkSaleComplete(ctx context.Context, saleID, userID string) (int, error)
}

// SalesHandler handles sale listing, feed and completion requests.
type SalesHandler struct {
	svc SalesService
}

// NewSalesHandler creates a new SalesHandler.
func NewSalesHandler(svc SalesService) *SalesHandler {
	return &SalesHandler{svc: svc}
}

// --- Input/Output types ---

// ListSalesInput holds the AND-combined sale filters.
type ListSalesInput struct {
	UserHeader
	DateRange   string `query:"date_range"   doc:"Sale date window"                                  enum:"7d,30d,90d,all,custom,"`
	Start       string `query:"start"        doc:"Custom range start (YYYY-MM-DD, inclusive)"`
	End         string `query:"end"          doc:"Custom range end (YYYY-MM-DD, inclusive)"`
	PriceBand   string `query:"price_band"   doc:"Sale price bucket"                                 enum:"any,under500k,500k-1m,over1m,"`
	Suburb      string `query:"suburb"       doc:"Exact suburb (case-insensitive)"`
	MinBedrooms int    `query:"min_bedrooms" doc:"Minimum bedroom count"                                                                    minimum:"0"`
	Query       string `query:"q"            doc:"Free text matched against address and suburb"`
	Offset      int    `query:"offset"       doc:"Pagination offset (page size is fixed at 20)"                                           minimum:"0"`
	Favorites   bool   `query:"favorites"    doc:"Scope to the user's favorite suburbs when no suburb is given"`
}

// ListSalesOutput is one page of sales.
type ListSalesOutput struct {
	Body *domain.SalePage
}

// SaleIDInput addresses a single sale.
type SaleIDInput struct {
	UserHeader
	ID string `path:"id" doc:"Sale UUID"`
}

// GetSaleOutput is the response for a single sale.
type GetSaleOutput struct {
	Body *domain.Sale
}

// GetFeedOutput is the grouped opportunity feed for a sale.
type GetFeedOutput struct {
	Body *domain.Feed
}

// CompleteSaleOutput reports how many opportunities were resolved.
type CompleteSaleOutput struct {
	Body struct {
		SaleID   string `json:"sale_id"`
		Resolved int    `json:"resolved" doc:"Opportunities newly marked ignored"`
	}
}

// --- Handlers ---

// ListSales returns a page of sales with opportunity counts.
func (h *SalesHandler) ListSales(ctx context.Context, input *ListSalesInput) (*ListSalesOutput, error) {
	filter := domain.SaleFilter{
		DateRange: domain.DateRange(input.DateRange),
		PriceBand: domain.PriceBand(input.PriceBand),
		Suburb:    input.Suburb,
		Query:     input.Query,
		Offset:    input.Offset,
	}
	if input.MinBedrooms > 0 {
		filter.MinBedrooms = &input.MinBedrooms
	}

	var err error
	if filter.Start, err = parseDate("start", input.Start); err != nil {
		return nil, apiError("listing sales", err)
	}
	if filter.End, err = parseDate("end", input.End); err != nil {
		return nil, apiError("listing sales", err)
	}

	page, err := h.svc.ListSales(ctx, filter, input.UserID, input.Favorites)
	if err != nil {
		return nil, apiError("listing sales", err)
	}
	return &ListSalesOutput{Body: page}, nil
}

// GetSale returns a single sale by ID.
func (h *SalesHandler) GetSale(ctx context.Context, input *SaleIDInput) (*GetSaleOutput, error) {
	sale, err := h.svc.GetSale(ctx, input.ID)
	if err != nil {
		return nil, apiError("sale", err)
	}
	return &GetSaleOutput{Body: sale}, nil
}

// GetFeed returns the sale's opportunities grouped for display.
func (h *SalesHandler) GetFeed(ctx context.Context, input *SaleIDInput) (*GetFeedOutput, error) {
	f, err := h.svc.Feed(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, apiError("building feed", err)
	}
	return &GetFeedOutput{Body: f}, nil
}

// Complete marks every remaining opportunity of the sale as ignored.
func (h *SalesHandler) Complete(ctx context.Context, input *SaleIDInput) (*CompleteSaleOutput, error) {
	n, err := h.svc.MarkSaleComplete(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, apiError("completing sale", err)
	}

	resp := &CompleteSaleOutput{}
	resp.Body.SaleID = input.ID
	resp.Body.Resolved = n
	return resp, nil
}

func parseDate(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, domain.NewValidationError(field, "expected YYYY-MM-DD (got %q)", s)
	}
	return &t, nil
}

// RegisterSaleRoutes registers sale endpoints with the Huma API.
func RegisterSaleRoutes(api huma.API, h *SalesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-sales",
		Method:      http.MethodGet,
		Path:        "/api/v1/sales",
		Summary:     "List sales",
		Description: "Returns a page of sales filtered by date range, price band, suburb, " +
			"bedrooms and free text, newest first, each with its opportunity count.",
		Tags:   []string{"sales"},
		Errors: []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.ListSales)

	huma.Register(api, huma.Operation{
		OperationID: "get-sale",
		Method:      http.MethodGet,
		Path:        "/api/v1/sales/{id}",
		Summary:     "Get a sale by ID",
		Tags:        []string{"sales"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetSale)

	huma.Register(api, huma.Operation{
		OperationID: "get-sale-feed",
		Method:      http.MethodGet,
		Path:        "/api/v1/sales/{id}/feed",
		Summary:     "Get a sale's prospecting feed",
		Description: "Matches the sale against contacts in its suburb and returns them grouped " +
			"into hot, never contacted, previously contacted, on cooldown, contacted and " +
			"ignored, with progress counters.",
		Tags:   []string{"feed"},
		Errors: []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetFeed)

	huma.Register(api, huma.Operation{
		OperationID: "complete-sale",
		Method:      http.MethodPost,
		Path:        "/api/v1/sales/{id}/complete",
		Summary:     "Mark a sale complete",
		Description: "Records every remaining opportunity as ignored. Contacts on cooldown and " +
			"pairs that already have an action are left alone.",
		Tags:   []string{"feed"},
		Errors: []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, h.Complete)
}

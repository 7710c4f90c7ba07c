// Package store defines the datastore abstraction for sale-prospector.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"time"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// SaleQuery wraps the filter used to list sales.
type SaleQuery struct {
	domain.SaleFilter
}

// Store defines all data access operations for sale-prospector.
type Store interface {
	// Sales
	ListSales(ctx context.Context, q *SaleQuery, now time.Time) ([]domain.SaleSummary, int, error)
	GetSale(ctx context.Context, id string) (*domain.Sale, error)

	// Contacts
	ListContactsBySuburb(ctx context.Context, suburb string) ([]domain.Contact, error)

	// Actions
	UpsertAction(ctx context.Context, a *domain.SaleContactAction) error
	DeleteAction(ctx context.Context, saleID, contactID string) error
	ListActionsForSale(ctx context.Context, saleID string) ([]domain.SaleContactAction, error)
	InsertIgnoredActions(ctx context.Context, saleID string, contactIDs []string, userID string) (int, error)

	// SMS log
	LogSMS(ctx context.Context, e *domain.SMSLogEntry) error
	CountMessagesForSale(ctx context.Context, saleID string) (int, error)

	// Progress
	ListSuburbProgress(ctx context.Context, suburbs []string) ([]domain.SuburbProgress, error)

	// Favorites
	ListFavorites(ctx context.Context, userID string) ([]domain.SuburbFavorite, error)
	AddFavorite(ctx context.Context, userID, suburb string) error
	RemoveFavorite(ctx context.Context, userID, suburb string) error
	ReorderFavorites(ctx context.Context, userID string, suburbs []string) error

	// Settings
	GetCooldownDays(ctx context.Context, userID string) (*int, error)
	SetCooldownDays(ctx context.Context, userID string, days int) error

	// Geocoding
	ListSalesMissingCoordinates(ctx context.Context, limit int) ([]domain.Sale, error)
	ListContactsMissingCoordinates(ctx context.Context, limit int) ([]domain.Contact, error)
	SetSaleCoordinates(ctx context.Context, id string, lat, lng float64) error
	SetContactCoordinates(ctx context.Context, id string, lat, lng float64) error
	MarkSaleGeocodeFailed(ctx context.Context, id string) error
	MarkContactGeocodeFailed(ctx context.Context, id string) error

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}

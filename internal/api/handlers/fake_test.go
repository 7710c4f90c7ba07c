package handlers_test

import (
	"context"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// fakeProspector implements every service interface the handlers accept.
// Unset funcs panic so a test notices calls it did not expect.
type fakeProspector struct {
	listSales        func(domain.SaleFilter, string, bool) (*domain.SalePage, error)
	getSale          func(string) (*domain.Sale, error)
	feed             func(string, string) (*domain.Feed, error)
	markSaleComplete func(string, string) (int, error)
	recordAction     func(string, string, domain.ActionStatus, string) (*domain.SaleContactAction, error)
	undoAction       func(string, string) error
	logSMS           func(*domain.SMSLogEntry) error
	listFavorites    func(string) ([]domain.SuburbFavorite, error)
	addFavorite      func(string, string) ([]domain.SuburbFavorite, error)
	removeFavorite   func(string, string) ([]domain.SuburbFavorite, error)
	reorderFavorites func(string, []string) ([]domain.SuburbFavorite, error)
	cooldownDays     func(string) (int, error)
	setCooldownDays  func(string, int) error
	suburbProgress   func(string, []string) ([]domain.SuburbProgress, error)
}

func (f *fakeProspector) ListSales(_ context.Context, filter domain.SaleFilter, userID string, favs bool) (*domain.SalePage, error) {
	return f.listSales(filter, userID, favs)
}

func (f *fakeProspector) GetSale(_ context.Context, id string) (*domain.Sale, error) {
	return f.getSale(id)
}

func (f *fakeProspector) Feed(_ context.Context, saleID, userID string) (*domain.Feed, error) {
	return f.feed(saleID, userID)
}

func (f *fakeProspector) MarkSaleComplete(_ context.Context, saleID, userID string) (int, error) {
	return f.markSaleComplete(saleID, userID)
}

func (f *fakeProspector) RecordAction(
	_ context.Context,
	saleID, contactID string,
	action domain.ActionStatus,
	userID string,
) (*domain.SaleContactAction, error) {
	return f.recordAction(saleID, contactID, action, userID)
}

func (f *fakeProspector) UndoAction(_ context.Context, saleID, contactID string) error {
	return f.undoAction(saleID, contactID)
}

func (f *fakeProspector) LogSMS(_ context.Context, e *domain.SMSLogEntry) error {
	return f.logSMS(e)
}

func (f *fakeProspector) ListFavorites(_ context.Context, userID string) ([]domain.SuburbFavorite, error) {
	return f.listFavorites(userID)
}

func (f *fakeProspector) AddFavorite(_ context.Context, userID, suburb string) ([]domain.SuburbFavorite, error) {
	return f.addFavorite(userID, suburb)
}

func (f *fakeProspector) RemoveFavorite(_ context.Context, userID, suburb string) ([]domain.SuburbFavorite, error) {
	return f.removeFavorite(userID, suburb)
}

func (f *fakeProspector) ReorderFavorites(_ context.Context, userID string, suburbs []string) ([]domain.SuburbFavorite, error) {
	return f.reorderFavorites(userID, suburbs)
}

func (f *fakeProspector) CooldownDays(_ context.Context, userID string) (int, error) {
	return f.cooldownDays(userID)
}

func (f *fakeProspector) SetCooldownDays(_ context.Context, userID string, days int) error {
	return f.setCooldownDays(userID, days)
}

func (f *fakeProspector) SuburbProgress(_ context.Context, userID string, suburbs []string) ([]domain.SuburbProgress, error) {
	return f.suburbProgress(userID, suburbs)
}

const userHeader = "X-User-ID: agent-1"

func favorites(suburbs ...string) []domain.SuburbFavorite {
	out := make([]domain.SuburbFavorite, len(suburbs))
	for i, s := range suburbs {
		out[i] = domain.SuburbFavorite{UserID: "agent-1", Suburb: s, Position: i}
	}
	return out
}

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

const defaultPoolSize = 10

// PostgreSQL error codes that mean a referenced row does not exist.
const (
	pgForeignKeyViolation = "23503"
	pgInvalidTextRepr     = "22P02"
)

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// PostgresStore methods require live Postgres and are covered by the
// integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, maxConns int32) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// classify maps driver errors onto the domain error taxonomy. Missing rows,
// foreign key violations, and malformed identifiers become ErrNotFound;
// everything else is a StorageError.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation, pgInvalidTextRepr:
			return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
	}
	return &domain.StorageError{Op: op, Err: err}
}

// ListSales queries sales with the given filters, returning one page of
// results and the total match count.
func (s *PostgresStore) ListSales(
	ctx context.Context,
	q *SaleQuery,
	now time.Time,
) ([]domain.SaleSummary, int, error) {
	dataSQL, countSQL, args := q.ToSQL(now)

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, classify("counting sales", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, classify("querying sales", err)
	}
	defer rows.Close()

	sales := make([]domain.SaleSummary, 0, domain.SalePageSize)
	for rows.Next() {
		var ss domain.SaleSummary
		if err := rows.Scan(append(saleDest(&ss.Sale), &ss.OpportunityCount)...); err != nil {
			return nil, 0, classify("scanning sale", err)
		}
		sales = append(sales, ss)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, classify("iterating sales", err)
	}

	return sales, total, nil
}

// GetSale retrieves a sale by ID.
func (s *PostgresStore) GetSale(ctx context.Context, id string) (*domain.Sale, error) {
	sale := &domain.Sale{}
	if err := s.pool.QueryRow(ctx, queryGetSale, id).Scan(saleDest(sale)...); err != nil {
		return nil, classify("getting sale", err)
	}
	return sale, nil
}

// ListSalesMissingCoordinates returns sales that have not been geocoded yet.
func (s *PostgresStore) ListSalesMissingCoordinates(ctx context.Context, limit int) ([]domain.Sale, error) {
	rows, err := s.pool.Query(ctx, queryListSalesMissingCoordinates, limit)
	if err != nil {
		return nil, classify("querying ungeocoded sales", err)
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(saleDest(&sale)...); err != nil {
			return nil, classify("scanning sale", err)
		}
		sales = append(sales, sale)
	}
	return sales, classify("iterating sales", rows.Err())
}

// SetSaleCoordinates stores geocoded coordinates for a sale.
func (s *PostgresStore) SetSaleCoordinates(ctx context.Context, id string, lat, lng float64) error {
	tag, err := s.pool.Exec(ctx, querySetSaleCoordinates, id, lat, lng)
	if err != nil {
		return classify("setting sale coordinates", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("setting sale coordinates: %w", domain.ErrNotFound)
	}
	return nil
}

// ListContactsBySuburb returns every contact whose address suburb matches,
// ignoring case and surrounding whitespace.
func (s *PostgresStore) ListContactsBySuburb(ctx context.Context, suburb string) ([]domain.Contact, error) {
	return s.queryContacts(ctx, "listing contacts", queryListContactsBySuburb, suburb)
}

// ListContactsMissingCoordinates returns contacts with an address but no coordinates.
func (s *PostgresStore) ListContactsMissingCoordinates(ctx context.Context, limit int) ([]domain.Contact, error) {
	return s.queryContacts(ctx, "listing ungeocoded contacts", queryListContactsMissingCoordinates, limit)
}

// SetContactCoordinates stores geocoded coordinates for a contact.
func (s *PostgresStore) SetContactCoordinates(ctx context.Context, id string, lat, lng float64) error {
	tag, err := s.pool.Exec(ctx, querySetContactCoordinates, id, lat, lng)
	if err != nil {
		return classify("setting contact coordinates", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("setting contact coordinates: %w", domain.ErrNotFound)
	}
	return nil
}

// MarkSaleGeocodeFailed moves a sale behind never-tried sales in the
// geocode queue.
func (s *PostgresStore) MarkSaleGeocodeFailed(ctx context.Context, id string) error {
	return s.markGeocodeFailed(ctx, "sale", queryMarkSaleGeocodeFailed, id)
}

// MarkContactGeocodeFailed moves a contact behind never-tried contacts in
// the geocode queue.
func (s *PostgresStore) MarkContactGeocodeFailed(ctx context.Context, id string) error {
	return s.markGeocodeFailed(ctx, "contact", queryMarkContactGeocodeFailed, id)
}

func (s *PostgresStore) markGeocodeFailed(ctx context.Context, kind, query, id string) error {
	op := "marking " + kind + " geocode failure"
	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return classify(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}

// UpsertAction records the action for a (sale, contact) pair, replacing any
// previous one.
func (s *PostgresStore) UpsertAction(ctx context.Context, a *domain.SaleContactAction) error {
	args := pgx.NamedArgs{
		"sale_id":    a.SaleID,
		"contact_id": a.ContactID,
		"action":     string(a.Action),
		"user_id":    a.UserID,
	}
	if err := s.pool.QueryRow(ctx, queryUpsertAction, args).Scan(&a.CreatedAt); err != nil {
		return classify("upserting action", err)
	}
	return nil
}

// DeleteAction removes the action for a pair. A missing row is not an error.
func (s *PostgresStore) DeleteAction(ctx context.Context, saleID, contactID string) error {
	if _, err := s.pool.Exec(ctx, queryDeleteAction, saleID, contactID); err != nil {
		return classify("deleting action", err)
	}
	return nil
}

// ListActionsForSale returns all recorded actions for a sale.
func (s *PostgresStore) ListActionsForSale(ctx context.Context, saleID string) ([]domain.SaleContactAction, error) {
	rows, err := s.pool.Query(ctx, queryListActionsForSale, saleID)
	if err != nil {
		return nil, classify("querying actions", err)
	}
	defer rows.Close()

	var actions []domain.SaleContactAction
	for rows.Next() {
		var a domain.SaleContactAction
		if err := rows.Scan(&a.SaleID, &a.ContactID, &a.Action, &a.UserID, &a.CreatedAt); err != nil {
			return nil, classify("scanning action", err)
		}
		actions = append(actions, a)
	}
	return actions, classify("iterating actions", rows.Err())
}

// InsertIgnoredActions marks every given contact as ignored for the sale in
// one statement. Pairs that already have an action are left untouched.
// Returns the number of rows inserted.
func (s *PostgresStore) InsertIgnoredActions(
	ctx context.Context,
	saleID string,
	contactIDs []string,
	userID string,
) (int, error) {
	if len(contactIDs) == 0 {
		return 0, nil
	}
	tag, err := s.pool.Exec(ctx, queryInsertIgnoredActions, saleID, contactIDs, userID)
	if err != nil {
		return 0, classify("inserting ignored actions", err)
	}
	return int(tag.RowsAffected()), nil
}

// LogSMS records a sent message and advances the contact's last_sms_at in a
// single statement.
func (s *PostgresStore) LogSMS(ctx context.Context, e *domain.SMSLogEntry) error {
	var sentAt *time.Time
	if !e.SentAt.IsZero() {
		sentAt = &e.SentAt
	}
	args := pgx.NamedArgs{
		"sale_id":    e.SaleID,
		"contact_id": e.ContactID,
		"user_id":    e.UserID,
		"message":    e.Message,
		"sent_at":    sentAt,
	}
	if err := s.pool.QueryRow(ctx, queryLogSMS, args).Scan(&e.ID, &e.SentAt); err != nil {
		return classify("logging sms", err)
	}
	return nil
}

// CountMessagesForSale returns how many SMS messages were logged for a sale.
func (s *PostgresStore) CountMessagesForSale(ctx context.Context, saleID string) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, queryCountMessagesForSale, saleID).Scan(&n); err != nil {
		return 0, classify("counting messages", err)
	}
	return n, nil
}

// ListSuburbProgress returns aggregate counters per suburb. An empty list
// reports every suburb that has sales.
func (s *PostgresStore) ListSuburbProgress(ctx context.Context, suburbs []string) ([]domain.SuburbProgress, error) {
	if suburbs == nil {
		suburbs = []string{}
	}
	rows, err := s.pool.Query(ctx, queryListSuburbProgress, suburbs)
	if err != nil {
		return nil, classify("querying suburb progress", err)
	}
	defer rows.Close()

	var out []domain.SuburbProgress
	for rows.Next() {
		var p domain.SuburbProgress
		if err := rows.Scan(&p.Suburb, &p.Sales, &p.Contacted, &p.Ignored, &p.MessagesSent); err != nil {
			return nil, classify("scanning suburb progress", err)
		}
		out = append(out, p)
	}
	return out, classify("iterating suburb progress", rows.Err())
}

// ListFavorites returns a user's favorite suburbs in display order.
func (s *PostgresStore) ListFavorites(ctx context.Context, userID string) ([]domain.SuburbFavorite, error) {
	rows, err := s.pool.Query(ctx, queryListFavorites, userID)
	if err != nil {
		return nil, classify("querying favorites", err)
	}
	defer rows.Close()

	var favs []domain.SuburbFavorite
	for rows.Next() {
		var f domain.SuburbFavorite
		if err := rows.Scan(&f.UserID, &f.Suburb, &f.Position, &f.CreatedAt); err != nil {
			return nil, classify("scanning favorite", err)
		}
		favs = append(favs, f)
	}
	return favs, classify("iterating favorites", rows.Err())
}

// AddFavorite appends a suburb to the end of the user's list. Adding a suburb
// that is already present does nothing.
func (s *PostgresStore) AddFavorite(ctx context.Context, userID, suburb string) error {
	if _, err := s.pool.Exec(ctx, queryAddFavorite, userID, suburb); err != nil {
		return classify("adding favorite", err)
	}
	return nil
}

// RemoveFavorite deletes a suburb from the user's list. Missing rows are ignored.
func (s *PostgresStore) RemoveFavorite(ctx context.Context, userID, suburb string) error {
	if _, err := s.pool.Exec(ctx, queryRemoveFavorite, userID, suburb); err != nil {
		return classify("removing favorite", err)
	}
	return nil
}

// ReorderFavorites assigns positions following the order of suburbs.
func (s *PostgresStore) ReorderFavorites(ctx context.Context, userID string, suburbs []string) error {
	if _, err := s.pool.Exec(ctx, queryReorderFavorites, userID, suburbs); err != nil {
		return classify("reordering favorites", err)
	}
	return nil
}

// GetCooldownDays returns the user's stored cooldown window, or nil when the
// user has never set one.
func (s *PostgresStore) GetCooldownDays(ctx context.Context, userID string) (*int, error) {
	var days int
	err := s.pool.QueryRow(ctx, queryGetCooldownDays, userID).Scan(&days)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("getting cooldown days", err)
	}
	return &days, nil
}

// SetCooldownDays stores the user's cooldown window.
func (s *PostgresStore) SetCooldownDays(ctx context.Context, userID string, days int) error {
	if _, err := s.pool.Exec(ctx, querySetCooldownDays, userID, days); err != nil {
		return classify("setting cooldown days", err)
	}
	return nil
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the most recent run of each job.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks any 'running' job rows older than olderThan as 'crashed',
// then deletes all rows older than 30 days. Returns the number of rows marked as crashed.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}

	return affected, nil
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *PostgresStore) queryContacts(
	ctx context.Context,
	op string,
	query string,
	args ...any,
) ([]domain.Contact, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.Phone,
			&c.Address, &c.AddressSuburb,
			&c.Latitude, &c.Longitude, &c.LastSMSAt,
		); err != nil {
			return nil, classify("scanning contact", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, classify(op, rows.Err())
}

// saleDest returns scan destinations matching the sale column order used by
// every sale query.
func saleDest(sale *domain.Sale) []any {
	return []any{
		&sale.ID, &sale.Address, &sale.Suburb, &sale.City,
		&sale.SalePrice, &sale.SaleDate, &sale.PropertyType, &sale.Bedrooms,
		&sale.StreetName, &sale.StreetNumber,
		&sale.Latitude, &sale.Longitude, &sale.CreatedAt,
	}
}

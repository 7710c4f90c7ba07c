package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/donaldgifford/sale-prospector/internal/geocode"
	"github.com/donaldgifford/sale-prospector/internal/metrics"
	"github.com/donaldgifford/sale-prospector/internal/notify"
	"github.com/donaldgifford/sale-prospector/internal/store"
	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// GeocodeJobName is the job_runs name of the coordinate backfill.
const GeocodeJobName = "geocode_backfill"

const defaultBackfillBatchSize = 100

// BackfillResult counts what one backfill run did.
type BackfillResult struct {
	SalesGeocoded    int
	ContactsGeocoded int
	Failures         int
	DailyLimitHit    bool
}

// Rows is the number of rows the run updated.
func (r *BackfillResult) Rows() int {
	return r.SalesGeocoded + r.ContactsGeocoded
}

// Backfiller fills missing sale and contact coordinates so the matcher can
// use great-circle distances. Rows that fail to resolve stay empty and are
// retried on the next run.
type Backfiller struct {
	store    store.Store
	geocoder geocode.Geocoder
	notifier notify.Notifier
	log      *slog.Logger

	batchSize int
	country   string
}

// BackfillOption configures the Backfiller.
type BackfillOption func(*Backfiller)

// WithBackfillLogger sets a custom logger.
func WithBackfillLogger(l *slog.Logger) BackfillOption {
	return func(b *Backfiller) {
		b.log = l
	}
}

// WithBatchSize caps how many sales and how many contacts one run looks up.
func WithBatchSize(n int) BackfillOption {
	return func(b *Backfiller) {
		if n > 0 {
			b.batchSize = n
		}
	}
}

// WithCountry appends a country to every lookup to disambiguate suburbs.
func WithCountry(c string) BackfillOption {
	return func(b *Backfiller) {
		b.country = c
	}
}

// NewBackfiller creates a new Backfiller with injected dependencies.
func NewBackfiller(
	s store.Store,
	g geocode.Geocoder,
	n notify.Notifier,
	opts ...BackfillOption,
) *Backfiller {
	b := &Backfiller{
		store:     s,
		geocoder:  g,
		notifier:  n,
		log:       slog.Default(),
		batchSize: defaultBackfillBatchSize,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run geocodes one batch of sales and one batch of contacts, then sends a
// report. Lookup failures are counted, not returned; a reached daily quota
// ends the run early without error.
func (b *Backfiller) Run(ctx context.Context) (res *BackfillResult, err error) {
	ctx, end := startSpan(ctx, "engine.GeocodeBackfill")
	defer func() { end(err) }()

	start := time.Now()
	res = &BackfillResult{}
	defer func() {
		metrics.GeocodeBackfillDuration.Observe(time.Since(start).Seconds())
		b.report(ctx, start, res, err)
	}()

	if err := b.backfillSales(ctx, res); err != nil {
		return res, err
	}
	if !res.DailyLimitHit {
		if err := b.backfillContacts(ctx, res); err != nil {
			return res, err
		}
	}

	b.log.Info("geocode backfill complete",
		"sales", res.SalesGeocoded,
		"contacts", res.ContactsGeocoded,
		"failures", res.Failures,
		"daily_limit_hit", res.DailyLimitHit,
	)
	return res, nil
}

func (b *Backfiller) backfillSales(ctx context.Context, res *BackfillResult) error {
	sales, err := b.store.ListSalesMissingCoordinates(ctx, b.batchSize)
	if err != nil {
		return fmt.Errorf("listing sales without coordinates: %w", err)
	}

	for i := range sales {
		s := &sales[i]
		pt, stop, err := b.lookup(ctx, res, geocode.Request{
			Address: s.Address,
			Suburb:  s.Suburb,
			City:    s.City,
			Country: b.country,
		})
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		if pt == nil {
			if err := b.store.MarkSaleGeocodeFailed(ctx, s.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("recording geocode failure for sale %s: %w", s.ID, err)
			}
			continue
		}

		if err := b.store.SetSaleCoordinates(ctx, s.ID, pt.Lat, pt.Lng); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return fmt.Errorf("saving coordinates for sale %s: %w", s.ID, err)
		}
		res.SalesGeocoded++
	}
	return nil
}

func (b *Backfiller) backfillContacts(ctx context.Context, res *BackfillResult) error {
	contacts, err := b.store.ListContactsMissingCoordinates(ctx, b.batchSize)
	if err != nil {
		return fmt.Errorf("listing contacts without coordinates: %w", err)
	}

	for i := range contacts {
		c := &contacts[i]
		pt, stop, err := b.lookup(ctx, res, geocode.Request{
			Address: c.Address,
			Suburb:  c.AddressSuburb,
			Country: b.country,
		})
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		if pt == nil {
			if err := b.store.MarkContactGeocodeFailed(ctx, c.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("recording geocode failure for contact %s: %w", c.ID, err)
			}
			continue
		}

		if err := b.store.SetContactCoordinates(ctx, c.ID, pt.Lat, pt.Lng); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return fmt.Errorf("saving coordinates for contact %s: %w", c.ID, err)
		}
		res.ContactsGeocoded++
	}
	return nil
}

// lookup returns a nil point for a failed lookup and stop=true once the
// daily quota is exhausted. Only context errors are returned. Callers mark
// failed rows so the next batch starts with rows never tried.
func (b *Backfiller) lookup(
	ctx context.Context,
	res *BackfillResult,
	req geocode.Request,
) (pt *geocode.Point, stop bool, err error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	pt, err = b.geocoder.Geocode(ctx, req)
	switch {
	case err == nil:
		return pt, false, nil
	case errors.Is(err, geocode.ErrDailyLimitReached):
		b.log.Warn("daily geocoding limit reached, stopping backfill")
		res.DailyLimitHit = true
		return nil, true, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, false, err
	default:
		b.log.Warn("geocode lookup failed", "address", req.Address, "suburb", req.Suburb, "error", err)
		metrics.GeocodeFailuresTotal.Inc()
		res.Failures++
		return nil, false, nil
	}
}

func (b *Backfiller) report(ctx context.Context, start time.Time, res *BackfillResult, runErr error) {
	if b.notifier == nil {
		return
	}
	if runErr == nil && res.Rows() == 0 && res.Failures == 0 && !res.DailyLimitHit {
		return
	}

	err := b.notifier.SendJobReport(context.WithoutCancel(ctx), &notify.JobReport{
		JobName:          GeocodeJobName,
		StartedAt:        start,
		Duration:         time.Since(start),
		SalesGeocoded:    res.SalesGeocoded,
		ContactsGeocoded: res.ContactsGeocoded,
		Failures:         res.Failures,
		DailyLimitHit:    res.DailyLimitHit,
		Err:              runErr,
	})
	if err != nil {
		b.log.Error("sending backfill report failed", "error", err)
	}
}

package engine

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/donaldgifford/sale-prospector/internal/store"
	"github.com/donaldgifford/sale-prospector/pkg/cooldown"
	"github.com/donaldgifford/sale-prospector/pkg/matcher"
	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

var tracer = otel.Tracer("github.com/donaldgifford/sale-prospector/internal/engine")

// Prospector runs the sale, feed, action, favorite, and settings operations
// against the store. It holds no mutable state of its own.
type Prospector struct {
	store     store.Store
	log       *slog.Logger
	now       func() time.Time
	estimator matcher.ProximityEstimator

	defaultCooldownDays int
}

// NewProspector creates a new Prospector with injected dependencies.
func NewProspector(s store.Store, opts ...ProspectorOption) *Prospector {
	p := &Prospector{
		store:               s,
		log:                 slog.Default(),
		now:                 time.Now,
		estimator:           matcher.DefaultEstimator{},
		defaultCooldownDays: domain.DefaultCooldownDays,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProspectorOption configures the Prospector.
type ProspectorOption func(*Prospector)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ProspectorOption {
	return func(p *Prospector) {
		p.log = l
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) ProspectorOption {
	return func(p *Prospector) {
		p.now = now
	}
}

// WithEstimator overrides the distance estimator used by the matcher.
func WithEstimator(e matcher.ProximityEstimator) ProspectorOption {
	return func(p *Prospector) {
		p.estimator = e
	}
}

// WithDefaultCooldownDays sets the window for users without a saved
// setting. Unsupported values are ignored.
func WithDefaultCooldownDays(days int) ProspectorOption {
	return func(p *Prospector) {
		if cooldown.Valid(days) {
			p.defaultCooldownDays = days
		}
	}
}

// Ping checks the store connection.
func (p *Prospector) Ping(ctx context.Context) error {
	return p.store.Ping(ctx)
}

// startSpan opens a span and returns a closer that records err on it.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, span := tracer.Start(ctx, name)
	span.SetAttributes(attrs...)
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

func requireID(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return domain.NewValidationError(field, "is required")
	}
	return nil
}

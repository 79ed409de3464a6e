// Package audit runs one data-quality pass over the backend listings.
package audit

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/qrsegnaletica/signage-tracker/internal/backend"
	"github.com/qrsegnaletica/signage-tracker/internal/mapping"
	"github.com/qrsegnaletica/signage-tracker/internal/models"
	"github.com/qrsegnaletica/signage-tracker/internal/quality"
)

// Source provides the raw backend listings.
type Source interface {
	ListProducts(ctx context.Context) ([]models.APIProduct, error)
	ListMaintenances(ctx context.Context) ([]models.APIMaintenance, error)
}

// Recorder persists a finished report.
type Recorder interface {
	Record(ctx context.Context, report Report) error
}

// Report is the outcome of one run.
type Report struct {
	RunID        string
	StartedAt    time.Time
	Products     int
	Maintenances int
	Issues       []quality.Issue
	Summary      map[quality.Kind]int
}

// Options tunes retries and persistence.
type Options struct {
	// MaxElapsed bounds the retries of each listing fetch.
	MaxElapsed time.Duration
	// InitialInterval is the first retry delay; zero keeps the backoff default.
	InitialInterval time.Duration
	DryRun          bool
}

// Auditor fetches, maps, and inspects the backend data.
type Auditor struct {
	source   Source
	recorder Recorder
	mapper   *mapping.Mapper
	logger   *zap.Logger
	opts     Options
	now      func() time.Time
}

// New creates an Auditor. recorder may be nil for dry runs.
func New(source Source, recorder Recorder, opts Options, logger *zap.Logger) *Auditor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Auditor{
		source:   source,
		recorder: recorder,
		mapper:   mapping.NewMapper(logger),
		logger:   logger.Named("audit"),
		opts:     opts,
		now:      func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

// Run performs one audit pass.
func (a *Auditor) Run(ctx context.Context) (Report, error) {
	report := Report{RunID: uuid.NewString(), StartedAt: a.now()}

	var (
		products     []models.APIProduct
		maintenances []models.APIMaintenance
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = retry(gctx, a, "products", a.source.ListProducts)
		return err
	})
	g.Go(func() (err error) {
		maintenances, err = retry(gctx, a, "maintenances", a.source.ListMaintenances)
		return err
	})
	if err := g.Wait(); err != nil {
		return report, err
	}
	a.logger.Info("fetched listings",
		zap.String("run_id", report.RunID),
		zap.Int("products", len(products)),
		zap.Int("maintenances", len(maintenances)),
	)

	// Mapping is total; running it surfaces the mapper's own diagnostics.
	report.Products = len(a.mapper.Products(products))
	report.Maintenances = len(a.mapper.Maintenances(maintenances))

	report.Issues = quality.Inspect(products, maintenances)
	report.Summary = quality.Summarize(report.Issues)
	for _, kind := range quality.Kinds(report.Summary) {
		a.logger.Info("quality issues",
			zap.String("run_id", report.RunID),
			zap.String("kind", string(kind)),
			zap.Int("count", report.Summary[kind]),
		)
	}

	if a.opts.DryRun || a.recorder == nil {
		for _, issue := range report.Issues {
			a.logger.Info("dry-run: would record issue", zap.Stringer("issue", issue))
		}
		return report, nil
	}

	if err := a.recorder.Record(ctx, report); err != nil {
		return report, err
	}
	a.logger.Info("recorded quality run",
		zap.String("run_id", report.RunID),
		zap.Int("issues", len(report.Issues)),
	)
	return report, nil
}

func retry[T any](ctx context.Context, a *Auditor, what string, fetch func(context.Context) (T, error)) (T, error) {
	b := backoff.NewExponentialBackOff()
	if a.opts.InitialInterval > 0 {
		b.InitialInterval = a.opts.InitialInterval
	}
	if a.opts.MaxElapsed > 0 {
		b.MaxElapsedTime = a.opts.MaxElapsed
	}

	operation := func() (T, error) {
		v, err := fetch(ctx)
		if err != nil && !retryable(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}
	notify := func(err error, wait time.Duration) {
		a.logger.Warn("fetch failed, retrying",
			zap.String("listing", what),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}

	return backoff.RetryNotifyWithData(operation, backoff.WithContext(b, ctx), notify)
}

// retryable reports whether another attempt could succeed. Client errors
// from the backend are final.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var statusErr *backend.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.HTTPStatus >= http.StatusInternalServerError || statusErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}

package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/qrsegnaletica/signage-tracker/internal/models"
)

const (
	productsPath     = "/products"
	maintenancesPath = "/maintenances"
)

var (
	// ErrUpstream marks every failure caused by the backend breaking its
	// response contract or being unreachable.
	ErrUpstream = errors.New("backend upstream error")

	// ErrMissingData is returned when an envelope has no payload.data.
	ErrMissingData = errors.New("response envelope has no payload.data")
)

// StatusError reports a non-success HTTP status or envelope status_code.
type StatusError struct {
	HTTPStatus int
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend responded http=%d status_code=%d: %s", e.HTTPStatus, e.StatusCode, e.Message)
}

// Unwrap lets errors.Is(err, ErrUpstream) match status failures.
func (e *StatusError) Unwrap() error {
	return ErrUpstream
}

// Options configures a Client.
type Options struct {
	BaseURL   string
	Token     string
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

// Client talks to the signage backend REST API and validates its envelopes.
// It returns wire records untouched; normalization belongs to the mapping package.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// New creates a backend client.
func New(opts Options, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.RetryWait <= 0 {
		opts.RetryWait = 500 * time.Millisecond
	}

	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.Retries).
		SetRetryWaitTime(opts.RetryWait).
		SetRetryMaxWaitTime(10*opts.RetryWait).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Only reads are retried; a repeated POST could create duplicates.
			return err == nil && r.StatusCode() >= http.StatusInternalServerError &&
				r.Request.Method == http.MethodGet
		})

	if opts.Token != "" {
		client.SetAuthToken(opts.Token)
	}

	return &Client{http: client, logger: logger.Named("backend")}
}

type tokenKey struct{}

// WithToken returns a context whose requests authenticate with token
// instead of the client's configured one.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// ListProducts returns the backend product listing.
func (c *Client) ListProducts(ctx context.Context) ([]models.APIProduct, error) {
	return do[[]models.APIProduct](ctx, c, http.MethodGet, productsPath, nil)
}

// ListMaintenances returns the backend maintenance listing.
func (c *Client) ListMaintenances(ctx context.Context) ([]models.APIMaintenance, error) {
	return do[[]models.APIMaintenance](ctx, c, http.MethodGet, maintenancesPath, nil)
}

// CreateProduct submits a new product and returns the record the backend stored.
func (c *Client) CreateProduct(ctx context.Context, req models.ProductRequest) (models.APIProduct, error) {
	return do[models.APIProduct](ctx, c, http.MethodPost, productsPath, req)
}

// CreateMaintenance submits a new maintenance and returns the record the backend stored.
func (c *Client) CreateMaintenance(ctx context.Context, req models.MaintenanceRequest) (models.APIMaintenance, error) {
	return do[models.APIMaintenance](ctx, c, http.MethodPost, maintenancesPath, req)
}

func do[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var (
		zero T
		env  models.Envelope[T]
	)

	req := c.http.R().
		SetContext(ctx).
		SetResult(&env).
		SetError(&env).
		ForceContentType("application/json")
	if token := tokenFrom(ctx); token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return zero, fmt.Errorf("%w: %s %s: %w", ErrUpstream, method, path, err)
	}

	if !resp.IsSuccess() || env.StatusCode < 200 || env.StatusCode > 299 {
		c.logger.Warn("backend returned error status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("http_status", resp.StatusCode()),
			zap.Int("status_code", env.StatusCode),
			zap.String("message", env.Message),
		)
		return zero, &StatusError{HTTPStatus: resp.StatusCode(), StatusCode: env.StatusCode, Message: env.Message}
	}

	if env.Payload == nil || env.Payload.Data == nil {
		return zero, fmt.Errorf("%w: %w: %s %s", ErrUpstream, ErrMissingData, method, path)
	}

	c.logger.Debug("backend request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Duration("latency", resp.Time()),
	)
	return *env.Payload.Data, nil
}

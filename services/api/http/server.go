package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/qrsegnaletica/signage-tracker/internal/backend"
	"github.com/qrsegnaletica/signage-tracker/internal/mapping"
	"github.com/qrsegnaletica/signage-tracker/internal/models"
	"github.com/qrsegnaletica/signage-tracker/services/api/config"
	"github.com/qrsegnaletica/signage-tracker/services/api/db"
)

const defaultRequestTimeout = 20 * time.Second

// Backend is the upstream signage API the proxy forwards to.
type Backend interface {
	ListProducts(ctx context.Context) ([]models.APIProduct, error)
	ListMaintenances(ctx context.Context) ([]models.APIMaintenance, error)
	CreateProduct(ctx context.Context, req models.ProductRequest) (models.APIProduct, error)
	CreateMaintenance(ctx context.Context, req models.MaintenanceRequest) (models.APIMaintenance, error)
}

// IssueReader serves the quality reports recorded by the auditor.
type IssueReader interface {
	LatestIssues(ctx context.Context, q db.IssueQuery) ([]db.QualityIssue, error)
}

// Server bundles router and dependencies for the REST API.
type Server struct {
	cfg     config.Config
	backend Backend
	issues  IssueReader
	mapper  *mapping.Mapper
	logger  *zap.Logger
	engine  *gin.Engine
}

// New constructs a server with routes and middleware. issues may be nil,
// in which case the stored quality report route is not registered.
func New(cfg config.Config, upstream Backend, issues IssueReader, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestIDMiddleware())
	engine.Use(accessLogMiddleware(logger.Named("http")))
	engine.Use(corsMiddleware())

	server := &Server{
		cfg:     cfg,
		backend: upstream,
		issues:  issues,
		mapper:  mapping.NewMapper(logger),
		logger:  logger,
		engine:  engine,
	}
	server.registerRoutes()
	return server
}

// Engine exposes the underlying gin engine (for tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.ListenAddr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.registerV1Routes()
}

// upstreamContext bounds a handler's backend calls. Without a proxy token
// of its own, the server forwards the caller's bearer token upstream.
func (s *Server) upstreamContext(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.RequestTimeout)
	if s.cfg.BearerToken == "" {
		if token, ok := bearerToken(c); ok {
			ctx = backend.WithToken(ctx, token)
		}
	}
	return ctx, cancel
}

// respondUpstreamError translates a backend failure into a proxy response.
// Client errors reported by the backend keep their status; everything else
// is a gateway failure.
func (s *Server) respondUpstreamError(c *gin.Context, err error) {
	_ = c.Error(err)

	var statusErr *backend.StatusError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "backend timed out"})
	case errors.As(err, &statusErr) && statusErr.HTTPStatus >= 400 && statusErr.HTTPStatus < 500:
		c.JSON(statusErr.HTTPStatus, gin.H{"error": statusErr.Message})
	case errors.Is(err, backend.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return token, token != ""
}

func bearerAuthMiddleware(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok || token != expected {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:   []string{"X-Request-ID"},
		MaxAge:          12 * time.Hour,
	})
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Header("X-Request-ID", requestID)
		c.Set("requestId", requestID)
		c.Next()
	}
}

func apiVersionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-API-Version", "v1")
		c.Next()
	}
}

func accessLogMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString("requestId")),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("request completed", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("request completed", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}

// Package api exposes the analysis engine over HTTP. All endpoints live
// under /api and speak JSON; analyses are submitted asynchronously and
// polled by ID.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/snpify/snpify-server/internal/analysis"
	"github.com/snpify/snpify-server/internal/config"
	"github.com/snpify/snpify-server/internal/domain"
	"github.com/snpify/snpify-server/internal/middleware"
	"github.com/snpify/snpify-server/internal/repository"
)

const serverVersion = "2.0.0"

// HistoryBrowser lists and prunes recorded analyses. A nil browser leaves
// the history endpoints unregistered.
type HistoryBrowser interface {
	Recent(ctx context.Context, limit int) ([]repository.HistoryEntry, error)
	Delete(ctx context.Context, id string) error
}

// Server is the HTTP front end of the analysis service.
type Server struct {
	engine    *gin.Engine
	server    *http.Server
	svc       *analysis.Service
	history   HistoryBrowser
	cfg       *config.Config
	log       *logrus.Entry
	startedAt time.Time
}

// NewServer builds the router, middleware stack and HTTP server around the
// analysis service. history may be nil when persistence is disabled.
func NewServer(cfg *config.Config, svc *analysis.Service, history HistoryBrowser, logger *logrus.Logger) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		svc:       svc,
		history:   history,
		cfg:       cfg,
		log:       logger.WithField("component", "api"),
		startedAt: time.Now().UTC(),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		engine.Use(limiter.Middleware())
	}
	engine.MaxMultipartMemory = cfg.Analysis.MaxFileSize

	s.registerRoutes(engine)
	s.engine = engine
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return s
}

func (s *Server) registerRoutes(engine *gin.Engine) {
	api := engine.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.GET("/statistics", s.handleStatistics)

		api.POST("/analyze/sequence", s.handleAnalyzeSequence)
		api.POST("/analyze/file", s.handleAnalyzeFile)

		api.GET("/analysis/:id", s.handleGetAnalysis)
		api.GET("/analysis/:id/progress", s.handleProgress)
		api.GET("/analysis/:id/export/:format", s.handleExport)
		api.DELETE("/analysis/:id", s.handleDeleteAnalysis)

		if s.history != nil {
			api.GET("/history", s.handleHistory)
			api.DELETE("/history/:id", s.handleDeleteHistory)
		}
	}
}

// Handler returns the HTTP handler, used directly by tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	s.log.WithField("addr", s.server.Addr).Info("HTTP server starting")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("HTTP server shutting down")
	return s.server.Shutdown(ctx)
}

// errorResponse maps pipeline errors onto HTTP status codes and a uniform
// error body.
func (s *Server) errorResponse(c *gin.Context, err error) {
	code := domain.ErrorCode(err)

	status := http.StatusInternalServerError
	switch {
	case code == domain.ErrCodeNotFound:
		status = http.StatusNotFound
	case domain.UserActionable(err):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.log.WithError(err).WithField("request_id",
			c.GetString(middleware.RequestIDKey)).Error("Request failed")
	}

	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": err.Error(),
		},
	})
}

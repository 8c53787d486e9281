// Package api - Thin HTTP layer over the TCO engine
// The API is ONLY responsible for: input ingestion, engine invocation, output serialization.
// The API NEVER performs cost logic.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tco-calculator/core/tco"
	"tco-calculator/internal/metrics"
)

// RequestIDHeader carries the per-request identifier
const RequestIDHeader = "X-Request-ID"

// Options configures a Server
type Options struct {
	// Version is reported by /version and in result metadata
	Version string

	// Logger receives request logs; nil disables them
	Logger *zap.Logger

	// Metrics enables GET /metrics when set
	Metrics *metrics.Metrics

	// DefaultTimeframe is used when a request omits the timeframe
	DefaultTimeframe int
}

// Server is the API server
type Server struct {
	engine  *gin.Engine
	handler *Handler
	opts    Options
}

// NewServer creates a new API server
func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.DefaultTimeframe == 0 {
		opts.DefaultTimeframe = tco.DefaultTimeframe
	}

	s := &Server{
		engine:  gin.New(),
		handler: NewHandler(opts),
		opts:    opts,
	}

	s.engine.Use(requestID(), s.accessLog(), gin.Recovery())
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/version", s.handleVersion)

	if s.opts.Metrics != nil {
		s.engine.GET("/metrics", gin.WrapH(s.opts.Metrics.Handler()))
	}

	v1 := s.engine.Group("/v1")
	{
		v1.POST("/calculate", s.handler.Calculate)
		v1.GET("/defaults", s.handler.Defaults)
		v1.GET("/fields", s.handler.Fields)
	}
}

// handleHealth handles GET /health
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": s.opts.Version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// handleVersion handles GET /version
func (s *Server) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":     s.opts.Version,
		"engine":      "tco-calculator",
		"api_version": "v1",
	})
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return s.engine.Run(addr)
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		if s.opts.Metrics != nil {
			s.opts.Metrics.ObserveRequest(route, c.Request.Method, status, elapsed)
		}
		s.opts.Logger.Info("request",
			zap.String("request_id", c.GetString(RequestIDHeader)),
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("duration", elapsed),
		)
	}
}

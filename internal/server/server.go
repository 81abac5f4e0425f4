// Package server exposes the demo agents over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"agent-demos/internal/agents"
	"agent-demos/internal/common/config"
	"agent-demos/internal/common/logger"
	"agent-demos/internal/common/simulator"
	"agent-demos/internal/common/stats"
	"agent-demos/pkg/registry"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// AgentSet resolves agents by id; *agents.Set implements it.
type AgentSet interface {
	Lookup(id string) (simulator.Runner, error)
	Enabled() []agents.Definition
	Registry() *registry.Registry
}

type Options struct {
	Server  config.ServerConfig
	Metrics config.MetricsConfig
	App     config.AppConfig
	Agents  AgentSet
	Counter stats.Counter
	Logger  logger.Logger
	// Checks are run by /ready, keyed by dependency name.
	Checks map[string]ReadinessCheck
}

type Server struct {
	opts   Options
	router *gin.Engine
	http   *http.Server
	logger logger.Logger
}

func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = logger.NewNoOpLogger()
	}
	if opts.Counter == nil {
		opts.Counter = stats.NewMemoryCounter()
	}

	s := &Server{
		opts:   opts,
		logger: opts.Logger.WithFields(map[string]interface{}{"component": "http"}),
	}
	s.router = s.routes()
	s.http = &http.Server{
		Addr:         opts.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  config.GetDuration(opts.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(opts.Server.WriteTimeout),
	}
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(requestID(), accessLog(s.logger), recovery(s.logger))

	r.GET("/health", s.health)
	r.GET("/ready", s.ready)
	r.GET("/.well-known/agent.json", s.agentCard)

	api := r.Group("/api")
	api.GET("/agents", s.listAgents)
	api.GET("/stats", s.stats)
	api.POST("/:agent", s.runAgent)

	if s.opts.Metrics.Enabled {
		r.GET(s.opts.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found", "code": "NOT_FOUND"})
	})
	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("http server listening", map[string]interface{}{
		"addr":   s.http.Addr,
		"agents": len(s.opts.Agents.Enabled()),
	})
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight demo runs until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down", nil)
	return s.http.Shutdown(ctx)
}

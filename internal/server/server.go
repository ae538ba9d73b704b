// Package server exposes the assessment pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jpsleep/sleepcheck/internal/advisor"
	"github.com/jpsleep/sleepcheck/internal/assess"
	"github.com/jpsleep/sleepcheck/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	Service *assess.Service
	Advisor *advisor.Advisor // optional
	Metrics *metrics.Metrics // optional
	// Gatherer backs /metrics; nil disables the route.
	Gatherer prometheus.Gatherer
	Logger   zerolog.Logger
	// Release switches gin to release mode.
	Release bool
}

// Server is the HTTP front end. Handlers hold no per-request state beyond
// what the assess.Service already guards, so requests run concurrently.
type Server struct {
	svc     *assess.Service
	advisor *advisor.Advisor
	metrics *metrics.Metrics
	log     zerolog.Logger
	engine  *gin.Engine
}

// New builds the router.
func New(opts Options) *Server {
	if opts.Release {
		gin.SetMode(gin.ReleaseMode)
	}
	s := &Server{
		svc:     opts.Service,
		advisor: opts.Advisor,
		metrics: opts.Metrics,
		log:     opts.Logger.With().Str("component", "server").Logger(),
	}

	r := gin.New()
	r.Use(s.recovery())
	r.Use(s.accessLog())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}
	s.registerRoutes(r)

	s.engine = r
	return s
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

// Package httpapi exposes the project generator over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/bpmlabs/igniter/internal/core/ports"
)

// shutdownTimeout bounds the drain of in-flight requests on stop.
const shutdownTimeout = 10 * time.Second

// RouterConfig collects everything the router needs.
type RouterConfig struct {
	Handler     *Handler
	Metrics     *Metrics
	CORSOrigins []string
}

// NewRouter builds the gin engine with the full route table.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(measure(cfg.Metrics))

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", RequestIDHeader}
	router.Use(cors.New(corsConfig))

	router.GET("/healthcheck", HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
		cfg.Metrics.registry,
		promhttp.HandlerOpts{},
	)))

	api := router.Group("/api")
	{
		api.POST("/project/download", cfg.Handler.DownloadProject)
		api.POST("/project/file/:name", cfg.Handler.GenerateFile)
		api.GET("/versions", cfg.Handler.ListVersions)
		api.POST("/versions/refresh", cfg.Handler.RefreshVersions)
	}

	return router
}

// Server runs the API over a plain net/http server with graceful
// shutdown tied to the caller's context.
type Server struct {
	addr   string
	engine *gin.Engine
	logger ports.Logger
}

// NewServer creates a Server listening on addr.
func NewServer(addr string, engine *gin.Engine, logger ports.Logger) *Server {
	return &Server{
		addr:   addr,
		engine: engine,
		logger: logger,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info(fmt.Sprintf("listening on %s", s.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, "http server failed")
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return zerr.Wrap(err, "http server shutdown failed")
		}
		return nil
	})

	return g.Wait()
}

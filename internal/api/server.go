package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/altcrop"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/catalog"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/history"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/selection"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/store"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/telemetry"
)

// Server is the HTTP surface for the presentation collaborator: read
// accessors for the live state plus the single crop mutator.
type Server struct {
	ctrl       *selection.Controller
	catalog    *catalog.Catalog
	feed       *telemetry.Feed
	history    *history.Aggregator
	altTable   *altcrop.Table
	thresholds store.ThresholdRuleRepository

	defaultWindow time.Duration
	port          int
	engine        *gin.Engine
	logger        *slog.Logger
}

func New(
	ctrl *selection.Controller,
	cat *catalog.Catalog,
	feed *telemetry.Feed,
	hist *history.Aggregator,
	altTable *altcrop.Table,
	thresholds store.ThresholdRuleRepository,
	defaultWindow time.Duration,
	port int,
	logger *slog.Logger,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		ctrl:          ctrl,
		catalog:       cat,
		feed:          feed,
		history:       hist,
		altTable:      altTable,
		thresholds:    thresholds,
		defaultWindow: defaultWindow,
		port:          port,
		engine:        engine,
		logger:        logger.With("component", "api"),
	}
	s.registerRoutes()
	return s
}

// Engine exposes the underlying gin engine (for tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.engine.Group("/api/v1")
	v1.GET("/state", s.handleState)
	v1.GET("/thresholds", s.handleThresholds)
	v1.GET("/history", s.handleHistory)
	v1.GET("/crops", s.handleCrops)
	v1.PUT("/crop", s.handleSetCrop)
}

// Run starts the HTTP server and blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.logger.Info("api listening", "addr", srv.Addr)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve api: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown api: %w", err)
	}
	return nil
}

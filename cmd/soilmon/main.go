package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/altcrop"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/api"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/catalog"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/config"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/history"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/selection"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/store"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/store/postgres"
	redisfeed "github.com/SmartSoil-SPCBA/SmartSoil/internal/store/redis"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.New(postgres.Config{
		URL:             cfg.DB.URL,
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer db.Close()

	if cfg.DB.MigrationsDir != "" {
		if err := db.RunMigrations(cfg.DB.MigrationsDir); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	deviceRepo := postgres.NewDeviceRepo(db)
	thresholdRepo := postgres.NewThresholdRuleRepo(db)
	altCropRepo := postgres.NewAltCropRuleRepo(db)
	readingRepo := postgres.NewReadingRepo(db)

	feedSource, closeFeed, err := newFeedSource(cfg, logger)
	if err != nil {
		return fmt.Errorf("init reading feed: %w", err)
	}
	if closeFeed != nil {
		defer closeFeed()
	}

	altTable := altcrop.NewTable(logger)
	if cfg.AltCrop.RulesFile != "" {
		err = altTable.LoadFromFile(cfg.AltCrop.RulesFile)
	} else {
		err = altTable.LoadFromStore(ctx, altCropRepo)
	}
	if err != nil {
		// Soft: the suggestion degrades to its canned form.
		logger.Warn("alt crop rules unavailable", "error", err)
	}

	var ctrl *selection.Controller
	guard := guardFunc(func() uint64 { return ctrl.Generation() })

	cat := catalog.New(thresholdRepo, guard, logger)
	feed := telemetry.NewFeed(readingRepo, feedSource, guard, logger)
	hist := history.NewAggregator(readingRepo, guard, logger)
	ctrl = selection.NewController(deviceRepo, cat, feed, hist, cfg.Device.ID, cfg.History.DefaultWindow, logger)
	defer ctrl.Close()

	ctrl.Start(ctx, cfg.Device.DefaultCrop)

	srv := api.New(ctrl, cat, feed, hist, altTable, thresholdRepo, cfg.History.DefaultWindow, cfg.Server.Port, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(ctx)
	})

	logger.Info("smartsoil started",
		"device_id", cfg.Device.ID,
		"feed_backend", cfg.Feed.Backend,
		"port", cfg.Server.Port,
	)
	return g.Wait()
}

// guardFunc adapts a closure to the Generation guard interfaces, which
// lets the catalog/feed/aggregator be constructed before the controller
// that owns the generation.
type guardFunc func() uint64

func (f guardFunc) Generation() uint64 { return f() }

func newFeedSource(cfg *config.Config, logger *slog.Logger) (store.ReadingFeed, func(), error) {
	switch cfg.Feed.Backend {
	case "postgres":
		return postgres.NewNotifyFeed(cfg.DB.URL, logger), nil, nil
	case "redis":
		f, err := redisfeed.NewPubSubFeed(cfg.Feed.RedisURL, logger)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { _ = f.Close() }, nil
	case "memory":
		return redisfeed.NewMemoryFeed(), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown feed backend %q", cfg.Feed.Backend)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

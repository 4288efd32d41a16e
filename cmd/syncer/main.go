package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"vehicle_sync/internal/api"
	"vehicle_sync/internal/cleanup"
	"vehicle_sync/internal/config"
	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/image"
	"vehicle_sync/internal/publisher"
	"vehicle_sync/internal/reconciler"
	"vehicle_sync/internal/scheduler"
	"vehicle_sync/internal/service"
	"vehicle_sync/internal/snapshot"
	"vehicle_sync/internal/source/autoapi"
	"vehicle_sync/internal/source/che168"
	"vehicle_sync/internal/source/dubicars"
	"vehicle_sync/internal/source/encar"
	"vehicle_sync/internal/storage/postgres"
	"vehicle_sync/internal/validator"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrate := flag.Bool("migrate", false, "apply database migrations before starting")
	once := flag.Bool("once", false, "sync every enabled source once and exit")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	mode, ok := domain.ParseSyncMode(cfg.Sync.Mode)
	if !ok {
		logger.Error("invalid sync mode", "mode", cfg.Sync.Mode)
		os.Exit(1)
	}

	if *migrate {
		if err := postgres.Migrate(cfg.Database.URL()); err != nil {
			logger.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Run summaries are only published when a broker is configured
	var summaries service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		summaries = rabbitMQ
	}

	// Initialize stores
	vehicleStore := postgres.NewVehicleStore(db)
	orderGuard := postgres.NewOrderGuard(db)
	cursorStore := postgres.NewSyncCursorStore(db)
	syncLogStore := postgres.NewSyncLogStore(db)
	countHistoryStore := postgres.NewCountHistoryStore(db)
	txManager := postgres.NewTransactionManager(db)

	rec := reconciler.New(vehicleStore, orderGuard, txManager, cfg.Sync.BatchSize, logger.With("component", "reconciler"))
	snapshotter := snapshot.New(vehicleStore, countHistoryStore, syncLogStore, logger)
	v := validator.New()

	manager := service.NewManager(cursorStore, syncLogStore)
	register := func(source service.Source, normalizer service.Normalizer) {
		syncService := service.NewSyncService(
			source,
			normalizer,
			rec,
			cursorStore,
			syncLogStore,
			vehicleStore,
			snapshotter,
			summaries,
			logger,
			cfg.Sync,
		)
		manager.Register(source.Name(), service.Pipeline{
			Runner:     syncService,
			Source:     source,
			Normalizer: normalizer,
		})
	}

	if cfg.Sources.Encar.Enabled {
		register(encar.New(clientConfig(cfg.Sources.Encar), logger), encar.NewNormalizer(v))
	}
	if cfg.Sources.Che168.Enabled {
		register(che168.New(clientConfig(cfg.Sources.Che168), logger), che168.NewNormalizer(v))
	}
	if cfg.Sources.Dubicars.Enabled {
		register(dubicars.New(clientConfig(cfg.Sources.Dubicars), logger), dubicars.NewNormalizer(v))
	}

	if len(manager.Sources()) == 0 {
		logger.Error("no sources enabled")
		os.Exit(1)
	}

	sched := scheduler.NewScheduler(manager, mode, cfg.Sync.Interval, cfg.Sync.RunTimeout, logger)

	// Image handling
	classifier := image.NewClassifier(cfg.Images.PermanentHosts, cfg.Images.SafetyMargin)
	proxy := image.NewProxy(cfg.Images.ProxyHosts, classifier, cfg.Images.FetchTimeout, logger)
	loader := image.NewLoader(proxy, cfg.Images.RetryAttempts, cfg.Images.RetryDelay, logger)

	cleaner := cleanup.New(vehicleStore, classifier, proxy, rec, snapshotter, cleanup.Config{
		PageSize:    cfg.Cleanup.PageSize,
		Concurrency: cfg.Cleanup.Concurrency,
	}, logger)
	if cfg.Cleanup.Enabled {
		sched.WithCleanup(cleaner, cfg.Cleanup.Interval, domain.CleanupOptions{
			CheckReachability: cfg.Cleanup.CheckReachability,
			TimeBudget:        cfg.Cleanup.TimeBudget,
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *once {
		sched.RunOnce(ctx)
		return
	}

	handler := api.NewHandler(manager, proxy, loader, classifier, snapshotter, countHistoryStore, vehicleStore, cleaner, logger)
	server := api.NewServer(cfg.Server, handler, logger)

	logger.Info("starting vehicle syncer",
		"sources", manager.Sources(),
		"mode", mode,
		"interval", cfg.Sync.Interval,
		"max_pages", cfg.Sync.MaxPages,
		"addr", cfg.Server.Addr,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		if err := sched.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("syncer stopped with error", "error", err)
		os.Exit(1)
	}
}

func clientConfig(c config.SourceConfig) autoapi.Config {
	return autoapi.Config{
		BaseURL:        c.BaseURL,
		V1URL:          c.V1URL,
		APIKey:         c.APIKey,
		Timeout:        c.Timeout,
		MaxAttempts:    c.Retry.MaxAttempts,
		InitialBackoff: c.Retry.InitialBackoff,
		MaxBackoff:     c.Retry.MaxBackoff,
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/mws-toolkit/internal/archive"
	"github.com/donaldgifford/mws-toolkit/internal/config"
	"github.com/donaldgifford/mws-toolkit/internal/engine"
	"github.com/donaldgifford/mws-toolkit/internal/metrics"
	"github.com/donaldgifford/mws-toolkit/internal/notify"
	"github.com/donaldgifford/mws-toolkit/internal/store"
	"github.com/donaldgifford/mws-toolkit/internal/telemetry"
	"github.com/donaldgifford/mws-toolkit/pkg/logger"
	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

// loadConfig reads the config file and builds the logger it describes.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, logger.New(cfg.Logging.Level, cfg.Logging.Format), nil
}

func setupTelemetry(ctx context.Context, cfg *config.Config) (*telemetry.Telemetry, error) {
	return telemetry.Setup(ctx, telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: Version,
		Environment:    cfg.Telemetry.Environment,
		Endpoint:       cfg.Telemetry.Endpoint,
		SampleRate:     cfg.Telemetry.SampleRate,
	})
}

// buildClients creates one vendor client per configured store. In mock mode
// every client replays the configured fixtures.
func buildClients(
	cfg *config.Config,
	log *slog.Logger,
	tp trace.TracerProvider,
) (map[string]*mws.Client, error) {
	clients := make(map[string]*mws.Client, len(cfg.Stores))
	for _, name := range cfg.StoreNames() {
		opts := []mws.Option{
			mws.WithLogger(log.With("store", name)),
			mws.WithThrottle(cfg.Throttle.NewThrottle()),
			mws.WithMaxThrottleRetries(cfg.Throttle.MaxRetries),
			mws.WithThrottleStop(cfg.Throttle.Stop),
			mws.WithUserAgent("mws-sync/" + Version),
			mws.WithRecorder(metrics.Recorder{}),
		}
		if tp != nil {
			opts = append(opts, mws.WithTracerProvider(tp))
		}
		if cfg.Mock.Enabled {
			dir := filepath.Clean(cfg.Mock.Dir)
			opts = append(opts, mws.WithMock(mws.NewMockTransport(dir, cfg.Mock.Entries...)))
		}

		c, err := mws.NewClient(cfg.Stores[name].Credentials(), opts...)
		if err != nil {
			return nil, fmt.Errorf("store %s: %w", name, err)
		}
		clients[name] = c
	}
	return clients, nil
}

func buildNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	if cfg.Notifications.Discord.Enabled {
		return notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
	}
	return notify.NewNoOpNotifier(log)
}

// engineOptions maps the sync and archive settings onto engine options.
// The archiver is nil when archiving is disabled.
func engineOptions(
	cfg *config.Config,
	log *slog.Logger,
	a archive.Archiver,
) []engine.EngineOption {
	opts := []engine.EngineOption{
		engine.WithLogger(log),
		engine.WithLookback(cfg.Sync.Lookback),
		engine.WithFetchItems(cfg.Sync.FetchItems),
		engine.WithOrderStatuses(slices.Clone(cfg.Sync.OrderStatuses)),
		engine.WithMaxPages(cfg.Sync.MaxPages),
		engine.WithStaggerOffset(cfg.Sync.StaggerOffset),
	}
	if a != nil {
		opts = append(opts,
			engine.WithArchiver(a, cfg.Archive.Bucket, cfg.Archive.Prefix),
			engine.WithReportTypes(slices.Clone(cfg.Sync.ReportTypes)),
			engine.WithAcknowledge(cfg.Sync.Acknowledge),
		)
	}
	return opts
}

// components are the pieces shared by serve and sync.
type components struct {
	store      store.Store
	closeStore func()
	clients    map[string]*mws.Client
	engine     *engine.Engine
	scheduler  *engine.Scheduler
	telemetry  *telemetry.Telemetry
}

func (c *components) Close(ctx context.Context, log *slog.Logger) {
	if c.telemetry != nil {
		if err := c.telemetry.Shutdown(ctx); err != nil {
			log.Error("shutting down telemetry", "error", err)
		}
	}
	if c.closeStore != nil {
		c.closeStore()
	}
}

// build wires store, clients, archiver, notifier, engine and scheduler.
func build(ctx context.Context, cfg *config.Config, log *slog.Logger) (*components, error) {
	comp := &components{}

	tel, err := setupTelemetry(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("setting up telemetry: %w", err)
	}
	comp.telemetry = tel

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		comp.Close(ctx, log)
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	comp.store, comp.closeStore = st, st.Close

	comp.clients, err = buildClients(cfg, log, tel.TracerProvider())
	if err != nil {
		comp.Close(ctx, log)
		return nil, err
	}

	var arch archive.Archiver
	if cfg.Archive.Enabled {
		s3a, err := archive.NewS3Archiver(ctx, &cfg.Archive, archive.WithLogger(log))
		if err != nil {
			comp.Close(ctx, log)
			return nil, fmt.Errorf("creating archiver: %w", err)
		}
		if err := s3a.EnsureBucket(ctx); err != nil {
			comp.Close(ctx, log)
			return nil, fmt.Errorf("checking archive bucket: %w", err)
		}
		arch = s3a
	}

	comp.engine = engine.NewEngine(
		st, comp.clients, buildNotifier(cfg, log), engineOptions(cfg, log, arch)...,
	)

	comp.scheduler, err = engine.NewScheduler(
		comp.engine, st, cfg.Sync.OrderInterval, cfg.Sync.ReportInterval, log,
		engine.WithNotifySuccess(cfg.Notifications.Discord.NotifySuccess),
	)
	if err != nil {
		comp.Close(ctx, log)
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}

	return comp, nil
}

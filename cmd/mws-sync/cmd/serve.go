package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/mws-toolkit/api/openapi"
	"github.com/donaldgifford/mws-toolkit/internal/api/handlers"
	"github.com/donaldgifford/mws-toolkit/internal/api/middleware"
	"github.com/donaldgifford/mws-toolkit/internal/config"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	comp, err := build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer comp.Close(context.WithoutCancel(ctx), logger)

	if err := comp.store.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	comp.scheduler.RecoverStaleJobRuns(ctx)
	comp.scheduler.Start()

	e := newServer(cfg, comp, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server",
		"addr", addr,
		"stores", comp.engine.Stores(),
		"jobs", comp.scheduler.Jobs(),
		"mock", cfg.Mock.Enabled,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	// Wait for running jobs so their job_run rows are completed.
	select {
	case <-comp.scheduler.Stop().Done():
	case <-shutdownCtx.Done():
		logger.Warn("scheduler did not stop before timeout")
	}

	logger.Info("server stopped")
	return nil
}

// newServer builds the echo server with middleware, operational routes and
// the huma API.
func newServer(cfg *config.Config, comp *components, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestLog(logger))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(comp.store)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig("MWS Sync API", Version)
	humaCfg.Info.Description = "Orders and report archives mirrored from seller accounts."
	api := humaecho.New(e, humaCfg)

	throttles := make(map[string]handlers.ThrottleSource, len(comp.clients))
	for name, c := range comp.clients {
		throttles[name] = c
	}

	handlers.RegisterOrderRoutes(api, handlers.NewOrdersHandler(comp.store))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(comp.store))
	handlers.RegisterReportRoutes(api, handlers.NewReportsHandler(comp.store))
	handlers.RegisterThrottleRoutes(api, handlers.NewThrottleHandler(throttles))
	handlers.RegisterCheckpointRoutes(api,
		handlers.NewCheckpointsHandler(comp.store, comp.engine.Stores()))
	handlers.RegisterSyncRoutes(api, handlers.NewSyncHandler(comp.scheduler))
	handlers.RegisterSystemStateRoutes(api, handlers.NewSystemStateHandler(comp.store))

	openapi.RegisterRoutes(e, humaCfg.Info.Title, openapi.DefaultSpecPath)

	return e
}

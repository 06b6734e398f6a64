package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"fitpick/internal/app"
	fitHTTP "fitpick/internal/http"
	httpH "fitpick/internal/http/handlers"
	"fitpick/internal/logger"
	"fitpick/internal/observability"
)

const serviceName = "fitserver"

func main() {
	cfg := app.ConfigFromEnv()
	cmd := &cobra.Command{
		Use:          serviceName,
		Short:        "Serve the fitpick engine over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address (env FITPICK_ADDR)")
	cmd.Flags().StringVar(&cfg.TablesPath, "tables", cfg.TablesPath, "reference tables YAML (default: embedded; env FITPICK_TABLES)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func serve(ctx context.Context, cfg app.Config) error {
	mode := cfg.LogMode
	if mode == "" {
		mode = "prod"
	}
	log, err := logger.New(mode)
	if err != nil {
		return err
	}
	defer log.Sync()

	if mode == "prod" || mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine, err := app.NewLocalEngine(cfg, log)
	if err != nil {
		log.Error("engine init failed", "error", err)
		return err
	}
	info, _ := engine.Reference(ctx)

	shutdown, err := observability.InitOTel(ctx, log, observability.OtelConfig{
		Enabled:     cfg.OTelEnabled,
		ServiceName: serviceName,
		Version:     info.Version,
		Endpoint:    cfg.OTelEndpoint,
		Insecure:    cfg.OTelInsecure,
	})
	if err != nil {
		log.Error("otel init failed", "error", err)
		return err
	}
	defer func() { _ = shutdown(context.Background()) }()

	rc := fitHTTP.RouterConfig{
		FitHandler:    httpH.NewFitHandler(engine),
		HealthHandler: httpH.NewHealthHandler(),
		Log:           log,
	}
	if cfg.OTelEnabled {
		rc.ServiceName = serviceName
	}

	log.Info("reference tables", "version", info.Version, "digest", info.Digest, "fits", info.Fits)
	if err := fitHTTP.NewServer(rc).Run(ctx, cfg.Addr); err != nil {
		log.Error("server failed", "error", err)
		return err
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nataliebakery/storefront/api/controllers"
	"github.com/nataliebakery/storefront/api/routes"
	cartsvc "github.com/nataliebakery/storefront/internal/cart"
	"github.com/nataliebakery/storefront/internal/catalog"
	checkoutsvc "github.com/nataliebakery/storefront/internal/checkout"
	"github.com/nataliebakery/storefront/pkg/config"
	"github.com/nataliebakery/storefront/pkg/logger"
	"github.com/nataliebakery/storefront/pkg/metrics"
	"github.com/nataliebakery/storefront/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	metricsCollector := metrics.NewStorefrontMetrics(prometheus.DefaultRegisterer)

	httpClient := &http.Client{Timeout: cfg.BakeryAPI.Timeout}
	catalogClient := catalog.NewClient(
		catalog.WithBaseURL(cfg.BakeryAPI.BaseURL),
		catalog.WithHTTPClient(httpClient),
		catalog.WithMetrics(metricsCollector),
	)

	cartStorage, err := cartsvc.NewRedisStorage(redisClient, cfg.Cart.SessionTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart storage", err)
		os.Exit(1)
	}
	cartStore := cartsvc.NewStore(cartStorage, logg, metricsCollector)

	checkoutService, err := checkoutsvc.NewService(catalogClient, cartStore, logg, metricsCollector)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting storefront server")

	router := routes.NewRouter(cfg, logg, catalogClient, cartStore, checkoutService, map[string]controllers.Pinger{
		"redis":      redisClient,
		"bakery_api": catalogClient,
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "storefront server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}

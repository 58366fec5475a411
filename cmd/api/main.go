package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/yourarttoy/arttoy-backend/api/controllers"
	"github.com/yourarttoy/arttoy-backend/api/routes"
	"github.com/yourarttoy/arttoy-backend/internal/arttoys"
	"github.com/yourarttoy/arttoy-backend/internal/orders"
	"github.com/yourarttoy/arttoy-backend/internal/users"
	"github.com/yourarttoy/arttoy-backend/pkg/config"
	"github.com/yourarttoy/arttoy-backend/pkg/db"
	"github.com/yourarttoy/arttoy-backend/pkg/logger"
	"github.com/yourarttoy/arttoy-backend/pkg/metrics"
	"github.com/yourarttoy/arttoy-backend/pkg/migrate"
	"github.com/yourarttoy/arttoy-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

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

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	artToyService := arttoys.NewService(arttoys.NewRepository(dbClient.DB()))
	orderService := orders.NewService(orders.NewRepository(dbClient.DB()), dbClient, orders.NewQuotaReserver())

	handler := routes.NewRouter(routes.Params{
		Config:   cfg,
		Logger:   logg,
		Users:    users.NewRepository(dbClient.DB()),
		ArtToys:  artToyService,
		Orders:   orderService,
		Limiter:  redisClient,
		Metrics:  metrics.NewHTTPMetrics(registry),
		Registry: registry,
		Pingers: map[string]controllers.Pinger{
			"database": dbClient,
			"redis":    redisClient,
		},
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

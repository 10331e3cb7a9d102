package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/hurricanehousing/hhh-backend/api/routes"
	"github.com/hurricanehousing/hhh-backend/internal/houses"
	"github.com/hurricanehousing/hhh-backend/internal/members"
	"github.com/hurricanehousing/hhh-backend/internal/pairings"
	"github.com/hurricanehousing/hhh-backend/pkg/config"
	"github.com/hurricanehousing/hhh-backend/pkg/db"
	"github.com/hurricanehousing/hhh-backend/pkg/logger"
	"github.com/hurricanehousing/hhh-backend/pkg/metrics"
	"github.com/hurricanehousing/hhh-backend/pkg/migrate"
	"github.com/hurricanehousing/hhh-backend/pkg/redis"
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
		Format:      cfg.App.LogFormat,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, dbClient.Close())
	}()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	housingMetrics := metrics.NewHousingMetrics(registry)

	deps := routes.Dependencies{
		Config:      cfg,
		Logger:      logg,
		DB:          dbClient,
		Registry:    registry,
		HTTPMetrics: metrics.NewHTTPMetrics(registry),
	}

	if cfg.Redis.Enabled() {
		redisClient, redisErr := redis.New(ctx, cfg.Redis, logg)
		if redisErr != nil {
			return redisErr
		}
		defer func() {
			err = multierr.Append(err, redisClient.Close())
		}()
		deps.Redis = redisClient
		deps.RateLimiter = redisClient
	} else {
		logg.Warn(ctx, "redis not configured, auth rate limiting disabled")
	}

	membersRepo := members.NewRepository(dbClient.DB())
	housesRepo := houses.NewRepository(dbClient.DB())
	pairingsRepo := pairings.NewRepository(dbClient.DB())

	if deps.Members, err = members.NewService(dbClient, membersRepo, housesRepo, housingMetrics); err != nil {
		return err
	}
	if deps.Houses, err = houses.NewService(housesRepo); err != nil {
		return err
	}
	if deps.Pairings, err = pairings.NewService(dbClient, pairingsRepo, housesRepo, membersRepo, housingMetrics); err != nil {
		return err
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logg.Info(logg.WithFields(ctx, map[string]any{
		"env":    cfg.App.Env,
		"addr":   addr,
		"driver": dbClient.Driver(),
	}), "starting api server")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logg.Info(context.Background(), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownWait)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

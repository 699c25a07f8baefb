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

	"github.com/tool2u/rental-platform/internal/api"
	"github.com/tool2u/rental-platform/internal/core/service"
	"github.com/tool2u/rental-platform/internal/infrastructure/config"
	mongodb "github.com/tool2u/rental-platform/internal/infrastructure/db/mongo"
	redisstore "github.com/tool2u/rental-platform/internal/infrastructure/kv/redis"
	"github.com/tool2u/rental-platform/internal/infrastructure/webhook"
	"github.com/tool2u/rental-platform/pkg/logger"
)

func main() {
	// A local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	kv := redisstore.NewStore(rdb)
	notifier := webhook.NewNotifier(cfg.Webhook.URL, cfg.Webhook.Timeout, log)

	sessionStore := service.NewSessionStore(kv, notifier, log)
	if err := sessionStore.Initialize(ctx); err != nil {
		// Start anonymous rather than refuse to serve.
		log.Warn().Err(err).Msg("session restore failed, starting anonymous")
	}

	catalogRepo := mongodb.NewCatalogRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)

	catalogService := service.NewCatalogService(catalogRepo, log)
	basketService := service.NewBasketService(kv, catalogRepo, log)
	orderService := service.NewOrderService(orderRepo, basketService, log)

	e := api.NewRouter(api.Deps{
		Session:   sessionStore,
		Catalog:   catalogService,
		Basket:    basketService,
		Orders:    orderService,
		Mongo:     db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		LoginPath: cfg.LoginPath,
		Logger:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("rental platform listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"overcooked-delivery/config"
	"overcooked-delivery/logging"
	httpapi "overcooked-delivery/order-svc/internal/api/http"
	"overcooked-delivery/order-svc/internal/service"
	"overcooked-delivery/order-svc/internal/storage"
)

func main() {
	cfg := config.Load(":8081")
	logging.Setup("order-svc", cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg)
	defer writer.Close()

	catalogSvc := service.NewCatalogService(repo, storage.NewRedisMenuCache(rdb, cfg.MenuCacheTTL))
	orderSvc := service.NewOrderService(
		catalogSvc,
		repo,
		storage.NewKafkaPublisher(writer),
		service.DefaultQRGenerator{BaseURL: cfg.QRBaseURL},
	)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(httpapi.NewHandler(catalogSvc, orderSvc)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("order service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down order service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

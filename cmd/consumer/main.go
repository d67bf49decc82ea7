package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Tickatch/log-service/internal/adapter/broker/rabbitmq"
	"github.com/Tickatch/log-service/internal/adapter/metrics"
	"github.com/Tickatch/log-service/internal/adapter/repository/postgres"
	"github.com/Tickatch/log-service/internal/pkg/config"
	"github.com/Tickatch/log-service/internal/pkg/logger"
	"github.com/Tickatch/log-service/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)
	log.Info("starting domain log consumer")

	m := metrics.NewConsumerMetrics()

	// --- Admin and Metrics Server ---
	adminMux := http.NewServeMux()
	adminMux.Handle("/metrics", promhttp.Handler())
	adminMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	adminServer := &http.Server{
		Addr:    cfg.AdminAddr,
		Handler: adminMux,
	}

	go func() {
		log.Info("starting admin & metrics server", "addr", adminServer.Addr)
		if err := adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("admin & metrics server failed", "error", err)
		}
	}()

	// --- Graceful Shutdown Context ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database ---
	db, err := postgres.Open(cfg.PostgresURL)
	if err != nil {
		log.Error("failed to open postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// --- Broker ---
	client, err := rabbitmq.NewClient(cfg.AMQPURL)
	if err != nil {
		log.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	if err := client.DeclareTopology(rabbitmq.LogBindings); err != nil {
		log.Error("failed to declare broker topology", "error", err)
		os.Exit(1)
	}

	consumer, err := rabbitmq.NewConsumer(client.Channel(), log, m, cfg.PrefetchCount)
	if err != nil {
		log.Error("failed to create consumer", "error", err)
		os.Exit(1)
	}

	// --- Wire the dispatch table ---
	recorder := usecase.NewDomainLogRecorder(postgres.NewDomainLogRepository(db, log), log)
	handlers := recorder.Handlers()

	var wg sync.WaitGroup
	for _, b := range rabbitmq.LogBindings {
		h, ok := handlers[b.Domain]
		if !ok {
			log.Error("no handler registered for domain", "domain", b.Domain)
			os.Exit(1)
		}

		b := b
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := consumer.Consume(ctx, b, h); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("consumer stopped", "domain", b.Domain, "error", err)
				stop()
			}
		}()
	}

	<-ctx.Done()
	log.Info("shutdown signal received, stopping consumers...")
	wg.Wait()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := adminServer.Shutdown(shutdownCtx); err != nil {
		log.Error("admin server shutdown failed", "error", err)
	}

	log.Info("consumer shut down gracefully")
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Tickatch/log-service/internal/adapter/api/handler"
	"github.com/Tickatch/log-service/internal/adapter/api/middleware"
	"github.com/Tickatch/log-service/internal/adapter/metrics"
	"github.com/Tickatch/log-service/internal/pkg/config"
	"github.com/Tickatch/log-service/internal/usecase"
)

// NewRouter creates and configures the event log HTTP router.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	m *metrics.APIMetrics,
	register usecase.EventLogRegisterUseCase,
	query usecase.EventLogQueryUseCase,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging(logger, m))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	r.Use(middleware.Identity)

	eventLogHandler := handler.NewEventLogHandler(register, query, logger)

	r.Route("/api/v1/event-logs", func(r chi.Router) {
		r.Post("/", eventLogHandler.Register)
		r.Get("/", eventLogHandler.GetList)
		r.Get("/{logId}", eventLogHandler.GetOne)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

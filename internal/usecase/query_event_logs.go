package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Tickatch/log-service/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type eventLogQueryService struct {
	repo   domain.EventLogQueryRepository
	logger *slog.Logger
}

// NewEventLogQueryService creates the generic event log query engine.
func NewEventLogQueryService(repo domain.EventLogQueryRepository, logger *slog.Logger) EventLogQueryUseCase {
	return &eventLogQueryService{
		repo:   repo,
		logger: logger.With("component", "event_log_query"),
	}
}

// GetOne looks up a single log by id. A missing record is a domain error,
// not a nil result.
func (s *eventLogQueryService) GetOne(ctx context.Context, logID uuid.UUID) (domain.EventLog, error) {
	log, err := s.repo.FindByID(ctx, logID)
	if err != nil {
		return domain.EventLog{}, err
	}
	if log == nil {
		return domain.EventLog{}, domain.ErrLogNotFound
	}
	return *log, nil
}

// GetList runs a dynamic filtered search. Page and size are normalized here
// so the repository always receives a usable window.
func (s *eventLogQueryService) GetList(ctx context.Context, cond domain.EventLogSearchCondition, req domain.PageRequest) (domain.Page[domain.EventLog], error) {
	if req.Page < 0 {
		req.Page = 0
	}
	if req.Size <= 0 {
		req.Size = defaultPageSize
	}
	if req.Size > maxPageSize {
		req.Size = maxPageSize
	}

	return s.repo.FindList(ctx, cond, req)
}

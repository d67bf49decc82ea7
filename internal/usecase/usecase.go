package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/Tickatch/log-service/internal/domain"
)

// EventLogRegisterUseCase accepts already-validated generic event log
// commands and persists them.
type EventLogRegisterUseCase interface {
	Register(ctx context.Context, cmd RegisterEventLogCommand) error
}

// EventLogQueryUseCase reads the generic event log store.
type EventLogQueryUseCase interface {
	GetOne(ctx context.Context, logID uuid.UUID) (domain.EventLog, error)
	GetList(ctx context.Context, cond domain.EventLogSearchCondition, req domain.PageRequest) (domain.Page[domain.EventLog], error)
}

package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Tickatch/log-service/internal/domain"
)

// RegisterEventLogCommand carries the fields of a generic event log write.
// Required text fields have already been validated by the boundary layer.
type RegisterEventLogCommand struct {
	EventCategory string
	EventType     string
	ActionType    string
	EventDetail   json.RawMessage
	UserID        *uuid.UUID
	ResourceID    string
	IPAddress     string
	TraceID       string
	ServiceName   string
}

type eventLogRegisterService struct {
	repo   domain.EventLogRepository
	logger *slog.Logger
}

// NewEventLogRegisterService creates the generic event log writer.
func NewEventLogRegisterService(repo domain.EventLogRepository, logger *slog.Logger) EventLogRegisterUseCase {
	return &eventLogRegisterService{
		repo:   repo,
		logger: logger.With("component", "event_log_register"),
	}
}

// Register assigns identity and timestamp at write time and persists the
// record unconditionally. There is no idempotency key and no
// read-before-write check.
func (s *eventLogRegisterService) Register(ctx context.Context, cmd RegisterEventLogCommand) error {
	userID := cmd.UserID
	if userID == nil {
		if id, ok := domain.IdentityFrom(ctx); ok {
			userID = &id.UserID
		}
	}

	log := domain.EventLog{
		LogID:         uuid.New(),
		EventCategory: cmd.EventCategory,
		EventType:     cmd.EventType,
		ActionType:    cmd.ActionType,
		EventDetail:   cmd.EventDetail,
		UserID:        userID,
		ResourceID:    cmd.ResourceID,
		IPAddress:     cmd.IPAddress,
		TraceID:       cmd.TraceID,
		ServiceName:   cmd.ServiceName,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, log); err != nil {
		s.logger.Error("failed to save event log", "error", err, "log_id", log.LogID)
		return err
	}

	return nil
}

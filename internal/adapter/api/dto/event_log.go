package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Tickatch/log-service/internal/domain"
	"github.com/Tickatch/log-service/internal/usecase"
)

// RegisterEventLogRequest is the body of POST /api/v1/event-logs.
type RegisterEventLogRequest struct {
	EventCategory string          `json:"eventCategory"`
	EventType     string          `json:"eventType"`
	ActionType    string          `json:"actionType"`
	EventDetail   json.RawMessage `json:"eventDetail,omitempty"`
	UserID        *uuid.UUID      `json:"userId,omitempty"`
	ResourceID    string          `json:"resourceId,omitempty"`
	IPAddress     string          `json:"ipAddress,omitempty"`
	TraceID       string          `json:"traceId,omitempty"`
	ServiceName   string          `json:"serviceName"`
}

// Validate checks the required text fields. Validation is a boundary
// responsibility; the use case receives only valid commands.
func (r RegisterEventLogRequest) Validate() error {
	var missing []string
	for field, value := range map[string]string{
		"eventCategory": r.EventCategory,
		"eventType":     r.EventType,
		"actionType":    r.ActionType,
		"serviceName":   r.ServiceName,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ToCommand converts the request into the use-case command.
func (r RegisterEventLogRequest) ToCommand() usecase.RegisterEventLogCommand {
	return usecase.RegisterEventLogCommand{
		EventCategory: r.EventCategory,
		EventType:     r.EventType,
		ActionType:    r.ActionType,
		EventDetail:   r.EventDetail,
		UserID:        r.UserID,
		ResourceID:    r.ResourceID,
		IPAddress:     r.IPAddress,
		TraceID:       r.TraceID,
		ServiceName:   r.ServiceName,
	}
}

// EventLogResponse is the wire shape of one generic event log record.
type EventLogResponse struct {
	LogID         uuid.UUID       `json:"logId"`
	EventCategory string          `json:"eventCategory"`
	EventType     string          `json:"eventType"`
	ActionType    string          `json:"actionType"`
	EventDetail   json.RawMessage `json:"eventDetail,omitempty"`
	UserID        *uuid.UUID      `json:"userId,omitempty"`
	ResourceID    string          `json:"resourceId,omitempty"`
	IPAddress     string          `json:"ipAddress,omitempty"`
	TraceID       string          `json:"traceId,omitempty"`
	ServiceName   string          `json:"serviceName"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// NewEventLogResponse maps a domain record onto the wire shape.
func NewEventLogResponse(l domain.EventLog) EventLogResponse {
	return EventLogResponse{
		LogID:         l.LogID,
		EventCategory: l.EventCategory,
		EventType:     l.EventType,
		ActionType:    l.ActionType,
		EventDetail:   l.EventDetail,
		UserID:        l.UserID,
		ResourceID:    l.ResourceID,
		IPAddress:     l.IPAddress,
		TraceID:       l.TraceID,
		ServiceName:   l.ServiceName,
		CreatedAt:     l.CreatedAt,
	}
}

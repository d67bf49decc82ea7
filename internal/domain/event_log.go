package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventLog is a directly-submitted business event recorded in the generic
// audit trail. Unlike the domain logs, its identity and timestamp are
// assigned at write time, not by the producer.
type EventLog struct {
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

// EventLogSearchCondition carries the optional filters for a log search.
// A nil field contributes no predicate; present fields are combined with AND.
// Keyword expands into a case-insensitive substring match over the
// eventCategory, eventType, actionType, resourceId and serviceName columns.
// The date range applies only when both bounds are present.
type EventLogSearchCondition struct {
	EventCategory *string
	EventType     *string
	ActionType    *string
	UserID        *uuid.UUID
	ServiceName   *string
	Keyword       string
	From          *time.Time
	To            *time.Time
}

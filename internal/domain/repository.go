package domain

import (
	"context"

	"github.com/google/uuid"
)

// EventLogRepository persists generic event logs. Records are append-only;
// there is no update or delete path.
type EventLogRepository interface {
	Save(ctx context.Context, log EventLog) error
}

// EventLogQueryRepository reads generic event logs.
type EventLogQueryRepository interface {
	// FindByID returns the log with the given id, or nil when none exists.
	FindByID(ctx context.Context, id uuid.UUID) (*EventLog, error)

	// FindList returns one page of logs matching the condition, together
	// with the total number of matching rows.
	FindList(ctx context.Context, cond EventLogSearchCondition, req PageRequest) (Page[EventLog], error)
}

// DomainLogRepository persists the per-domain audit logs, one table per
// domain. Every method performs a plain insert inside its own transaction;
// a duplicate producer-assigned id surfaces as a constraint violation rather
// than an idempotent no-op.
type DomainLogRepository interface {
	SaveAuthLog(ctx context.Context, log AuthLog) error
	SaveUserLog(ctx context.Context, log UserLog) error
	SaveProductLog(ctx context.Context, log ProductLog) error
	SaveArtHallLog(ctx context.Context, log ArtHallLog) error
	SaveReservationLog(ctx context.Context, log ReservationLog) error
	SaveReservationSeatLog(ctx context.Context, log ReservationSeatLog) error
	SaveTicketLog(ctx context.Context, log TicketLog) error
	SavePaymentLog(ctx context.Context, log PaymentLog) error
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Tickatch/log-service/internal/domain"
)

// Domain name constants keyed into the broker binding table.
const (
	DomainAuth            = "auth"
	DomainUser            = "user"
	DomainProduct         = "product"
	DomainArtHall         = "arthall"
	DomainReservation     = "reservation"
	DomainReservationSeat = "reservation-seat"
	DomainTicket          = "ticket"
	DomainPayment         = "payment"
)

// Handler consumes one raw message body. A returned error means the message
// must be rejected so the broker dead-letters it; decode failures and
// persistence failures are treated identically.
type Handler func(ctx context.Context, body []byte) error

// DomainLogRecorder is the single generic consumer core. Each domain differs
// only in its event shape and target table, so the per-domain work is a
// decode-and-map closure looked up from a dispatch table instead of eight
// near-identical consumers.
type DomainLogRecorder struct {
	repo   domain.DomainLogRepository
	logger *slog.Logger
}

// NewDomainLogRecorder creates the recorder backing every domain consumer.
func NewDomainLogRecorder(repo domain.DomainLogRepository, logger *slog.Logger) *DomainLogRecorder {
	return &DomainLogRecorder{
		repo:   repo,
		logger: logger.With("component", "domain_log_recorder"),
	}
}

// Handlers returns the dispatch table, one handler per domain queue.
func (r *DomainLogRecorder) Handlers() map[string]Handler {
	return map[string]Handler{
		DomainAuth:            record(r, "auth", mapAuthEvent, r.repo.SaveAuthLog),
		DomainUser:            record(r, "user", mapUserEvent, r.repo.SaveUserLog),
		DomainProduct:         record(r, "product", mapProductEvent, r.repo.SaveProductLog),
		DomainArtHall:         record(r, "arthall", mapArtHallEvent, r.repo.SaveArtHallLog),
		DomainReservation:     record(r, "reservation", mapReservationEvent, r.repo.SaveReservationLog),
		DomainReservationSeat: record(r, "reservation-seat", mapReservationSeatEvent, r.repo.SaveReservationSeatLog),
		DomainTicket:          record(r, "ticket", mapTicketEvent, r.repo.SaveTicketLog),
		DomainPayment:         record(r, "payment", mapPaymentEvent, r.repo.SavePaymentLog),
	}
}

// record builds the decode -> map -> persist pipeline for one domain. The
// mapping is pure structural transfer; no validation, no enrichment.
func record[E, L any](r *DomainLogRecorder, name string, mapFn func(E) L, save func(context.Context, L) error) Handler {
	return func(ctx context.Context, body []byte) error {
		var event E
		if err := json.Unmarshal(body, &event); err != nil {
			return fmt.Errorf("decode %s event: %w", name, err)
		}

		r.logger.Debug("recording domain log", "domain", name)

		if err := save(ctx, mapFn(event)); err != nil {
			return fmt.Errorf("save %s log: %w", name, err)
		}
		return nil
	}
}

func mapAuthEvent(e domain.AuthEvent) domain.AuthLog {
	return domain.AuthLog{
		AuthLogID:   e.EventID,
		ActionType:  e.ActionType,
		ActorType:   e.ActorType,
		ActorUserID: e.ActorUserID,
		OccurredAt:  e.OccurredAt,
	}
}

func mapUserEvent(e domain.UserEvent) domain.UserLog {
	return domain.UserLog{
		UserLogID:   e.EventID,
		UserID:      e.UserID,
		ActionType:  e.ActionType,
		ActorType:   e.ActorType,
		ActorUserID: e.ActorUserID,
		OccurredAt:  e.OccurredAt,
	}
}

func mapProductEvent(e domain.ProductEvent) domain.ProductLog {
	return domain.ProductLog{
		ProductLogID: e.EventID,
		ProductID:    e.ProductID,
		ActionType:   e.ActionType,
		ActorType:    e.ActorType,
		ActorUserID:  e.ActorUserID,
		OccurredAt:   e.OccurredAt,
	}
}

func mapArtHallEvent(e domain.ArtHallEvent) domain.ArtHallLog {
	return domain.ArtHallLog{
		ArtHallLogID: e.EventID,
		DomainType:   e.DomainType,
		DomainID:     e.DomainID,
		ActionType:   e.ActionType,
		ActorType:    e.ActorType,
		ActorUserID:  e.ActorUserID,
		OccurredAt:   e.OccurredAt,
	}
}

func mapReservationEvent(e domain.ReservationEvent) domain.ReservationLog {
	return domain.ReservationLog{
		ReservationLogID: e.EventID,
		ReservationID:    e.ReservationID,
		ActionType:       e.ActionType,
		ActorType:        e.ActorType,
		ActorUserID:      e.ActorUserID,
		OccurredAt:       e.OccurredAt,
	}
}

func mapReservationSeatEvent(e domain.ReservationSeatEvent) domain.ReservationSeatLog {
	return domain.ReservationSeatLog{
		ReservationSeatLogID: e.EventID,
		ReservationSeatID:    e.ReservationSeatID,
		SeatNumber:           e.SeatNumber,
		ActionType:           e.ActionType,
		ActorType:            e.ActorType,
		ActorUserID:          e.ActorUserID,
		OccurredAt:           e.OccurredAt,
	}
}

func mapTicketEvent(e domain.TicketEvent) domain.TicketLog {
	return domain.TicketLog{
		TicketLogID:   e.EventID,
		TicketID:      e.TicketID,
		ReceiveMethod: e.ReceiveMethod,
		ActionType:    e.ActionType,
		ActorType:     e.ActorType,
		ActorUserID:   e.ActorUserID,
		OccurredAt:    e.OccurredAt,
	}
}

func mapPaymentEvent(e domain.PaymentEvent) domain.PaymentLog {
	return domain.PaymentLog{
		PaymentLogID: e.EventID,
		PaymentID:    e.PaymentID,
		Method:       e.Method,
		RetryCount:   e.RetryCount,
		ActionType:   e.ActionType,
		ActorType:    e.ActorType,
		ActorUserID:  e.ActorUserID,
		OccurredAt:   e.OccurredAt,
	}
}

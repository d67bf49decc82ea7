package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Tickatch/log-service/internal/domain"
)

// DomainLogRepository implements domain.DomainLogRepository. Each save is a
// single insert; the producer-assigned id is the primary key, so a
// redelivered duplicate fails with a unique violation and the caller
// dead-letters the message.
type DomainLogRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewDomainLogRepository creates the per-domain log store.
func NewDomainLogRepository(db *sql.DB, logger *slog.Logger) *DomainLogRepository {
	return &DomainLogRepository{db: db, logger: logger.With("component", "domain_log_repository")}
}

func (r *DomainLogRepository) SaveAuthLog(ctx context.Context, l domain.AuthLog) error {
	const q = `INSERT INTO p_auth_log (id, action_type, actor_type, actor_user_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, q, l.AuthLogID, l.ActionType, l.ActorType, l.ActorUserID, l.OccurredAt); err != nil {
		return fmt.Errorf("insert auth log: %w", err)
	}
	return nil
}

func (r *DomainLogRepository) SaveUserLog(ctx context.Context, l domain.UserLog) error {
	const q = `INSERT INTO p_user_log (id, user_id, action_type, actor_type, actor_user_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecContext(ctx, q, l.UserLogID, l.UserID, l.ActionType, l.ActorType, l.ActorUserID, l.OccurredAt); err != nil {
		return fmt.Errorf("insert user log: %w", err)
	}
	return nil
}

func (r *DomainLogRepository) SaveProductLog(ctx context.Context, l domain.ProductLog) error {
	const q = `INSERT INTO p_product_log (id, product_id, action_type, actor_type, actor_user_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecContext(ctx, q, l.ProductLogID, l.ProductID, l.ActionType, l.ActorType, l.ActorUserID, l.OccurredAt); err != nil {
		return fmt.Errorf("insert product log: %w", err)
	}
	return nil
}

func (r *DomainLogRepository) SaveArtHallLog(ctx context.Context, l domain.ArtHallLog) error {
	const q = `INSERT INTO p_art_hall_log (id, domain_type, domain_id, action_type, actor_type, actor_user_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.db.ExecContext(ctx, q, l.ArtHallLogID, l.DomainType, l.DomainID, l.ActionType, l.ActorType, l.ActorUserID, l.OccurredAt); err != nil {
		return fmt.Errorf("insert art hall log: %w", err)
	}
	return nil
}

func (r *DomainLogRepository) SaveReservationLog(ctx context.Context, l domain.ReservationLog) error {
	const q = `INSERT INTO p_reservation_log (id, reservation_id, action_type, actor_type, actor_user_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecContext(ctx, q, l.ReservationLogID, l.ReservationID, l.ActionType, l.ActorType, l.ActorUserID, l.OccurredAt); err != nil {
		return fmt.Errorf("insert reservation log: %w", err)
	}
	return nil
}

func (r *DomainLogRepository) SaveReservationSeatLog(ctx context.Context, l domain.ReservationSeatLog) error {
	const q = `INSERT INTO p_reservation_seat_log (id, reservation_seat_id, seat_number, action_type, actor_type, actor_user_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.db.ExecContext(ctx, q, l.ReservationSeatLogID, l.ReservationSeatID, l.SeatNumber, l.ActionType, l.ActorType, l.ActorUserID, l.OccurredAt); err != nil {
		return fmt.Errorf("insert reservation seat log: %w", err)
	}
	return nil
}

func (r *DomainLogRepository) SaveTicketLog(ctx context.Context, l domain.TicketLog) error {
	const q = `INSERT INTO p_ticket_log (id, ticket_id, receive_method, action_type, actor_type, actor_user_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.db.ExecContext(ctx, q, l.TicketLogID, l.TicketID, nullString(l.ReceiveMethod), l.ActionType, l.ActorType, l.ActorUserID, l.OccurredAt); err != nil {
		return fmt.Errorf("insert ticket log: %w", err)
	}
	return nil
}

func (r *DomainLogRepository) SavePaymentLog(ctx context.Context, l domain.PaymentLog) error {
	const q = `INSERT INTO p_payment_log (id, payment_id, method, retry_count, action_type, actor_type, actor_user_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := r.db.ExecContext(ctx, q, l.PaymentLogID, l.PaymentID, nullString(l.Method), l.RetryCount, l.ActionType, l.ActorType, l.ActorUserID, l.OccurredAt); err != nil {
		return fmt.Errorf("insert payment log: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

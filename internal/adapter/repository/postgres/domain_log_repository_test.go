package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Tickatch/log-service/internal/domain"
)

func TestDomainLogRepositorySave(t *testing.T) {
	t.Run("Auth Log Without Actor", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDomainLogRepository(db, testLogger())

		log := domain.AuthLog{
			AuthLogID:  uuid.New(),
			ActionType: "LOGIN_FAILED",
			ActorType:  "USER",
			OccurredAt: time.Now().UTC(),
		}
		mock.ExpectExec("INSERT INTO p_auth_log").
			WithArgs(log.AuthLogID, log.ActionType, log.ActorType, nil, log.OccurredAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.SaveAuthLog(context.Background(), log); err != nil {
			t.Fatalf("SaveAuthLog() error = %v", err)
		}
	})

	t.Run("Payment Log", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDomainLogRepository(db, testLogger())

		actor := uuid.New()
		log := domain.PaymentLog{
			PaymentLogID: uuid.New(),
			PaymentID:    uuid.New(),
			Method:       "CARD",
			RetryCount:   1,
			ActionType:   "PAYMENT_RETRIED",
			ActorType:    "USER",
			ActorUserID:  &actor,
			OccurredAt:   time.Now().UTC(),
		}
		mock.ExpectExec("INSERT INTO p_payment_log").
			WithArgs(log.PaymentLogID, log.PaymentID, nullString("CARD"), 1,
				log.ActionType, log.ActorType, &actor, log.OccurredAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.SavePaymentLog(context.Background(), log); err != nil {
			t.Fatalf("SavePaymentLog() error = %v", err)
		}
	})

	t.Run("Ticket Log Without Receive Method", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDomainLogRepository(db, testLogger())

		log := domain.TicketLog{
			TicketLogID: uuid.New(),
			TicketID:    uuid.New(),
			ActionType:  "TICKET_EXPIRED",
			ActorType:   "SYSTEM",
			OccurredAt:  time.Now().UTC(),
		}
		mock.ExpectExec("INSERT INTO p_ticket_log").
			WithArgs(log.TicketLogID, log.TicketID, nullString(""),
				log.ActionType, log.ActorType, nil, log.OccurredAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.SaveTicketLog(context.Background(), log); err != nil {
			t.Fatalf("SaveTicketLog() error = %v", err)
		}
	})

	t.Run("Reservation Seat Log", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDomainLogRepository(db, testLogger())

		log := domain.ReservationSeatLog{
			ReservationSeatLogID: uuid.New(),
			ReservationSeatID:    9001,
			SeatNumber:           "B12",
			ActionType:           "SEAT_RESERVED",
			ActorType:            "USER",
			OccurredAt:           time.Now().UTC(),
		}
		mock.ExpectExec("INSERT INTO p_reservation_seat_log").
			WithArgs(log.ReservationSeatLogID, log.ReservationSeatID, log.SeatNumber,
				log.ActionType, log.ActorType, nil, log.OccurredAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.SaveReservationSeatLog(context.Background(), log); err != nil {
			t.Fatalf("SaveReservationSeatLog() error = %v", err)
		}
	})
}

func TestDomainLogRepositorySaveDuplicateKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDomainLogRepository(db, testLogger())

	// A redelivered event carries the same producer-assigned id and must
	// surface the unique violation so the message gets dead-lettered.
	pqErr := &pq.Error{Code: "23505", Constraint: "p_user_log_pkey"}
	mock.ExpectExec("INSERT INTO p_user_log").WillReturnError(pqErr)

	log := domain.UserLog{
		UserLogID:  uuid.New(),
		UserID:     uuid.New(),
		ActionType: "USER_CREATED",
		ActorType:  "USER",
		OccurredAt: time.Now().UTC(),
	}
	err := repo.SaveUserLog(context.Background(), log)
	if err == nil {
		t.Fatal("SaveUserLog() must fail on a duplicate id")
	}
	var got *pq.Error
	if !errors.As(err, &got) || got.Code != "23505" {
		t.Errorf("SaveUserLog() error = %v, want wrapped unique violation", err)
	}
}

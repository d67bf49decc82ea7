package domain

import (
	"time"

	"github.com/google/uuid"
)

// Domain logs are append-only records of actions that happened to business
// entities in other Tickatch services. Their primary key is the
// producer-assigned event id, taken verbatim; it is never generated here.

// AuthLog records an authentication event
// (LOGIN_SUCCESS / LOGIN_FAILED / ACCOUNT_LOCKED ...).
type AuthLog struct {
	AuthLogID   uuid.UUID
	ActionType  string
	ActorType   string
	ActorUserID *uuid.UUID
	OccurredAt  time.Time
}

// UserLog records a user account change (CREATED / UPDATED / DEACTIVATED / DELETED ...).
type UserLog struct {
	UserLogID   uuid.UUID
	UserID      uuid.UUID
	ActionType  string
	ActorType   string
	ActorUserID *uuid.UUID
	OccurredAt  time.Time
}

// ProductLog records a product lifecycle change.
type ProductLog struct {
	ProductLogID uuid.UUID
	ProductID    int64
	ActionType   string
	ActorType    string
	ActorUserID  *uuid.UUID
	OccurredAt   time.Time
}

// ArtHallLog records a venue change. DomainType distinguishes the art hall
// itself from one of its stages (ART_HALL | STAGE); DomainID is the id of
// whichever one the action applied to.
type ArtHallLog struct {
	ArtHallLogID uuid.UUID
	DomainType   string
	DomainID     int64
	ActionType   string // ACTIVATED | INACTIVATED | DELETED
	ActorType    string
	ActorUserID  *uuid.UUID
	OccurredAt   time.Time
}

// ReservationLog records a reservation change (CREATED / CONFIRMED / CANCELLED ...).
type ReservationLog struct {
	ReservationLogID uuid.UUID
	ReservationID    uuid.UUID
	ActionType       string
	ActorType        string
	ActorUserID      *uuid.UUID
	OccurredAt       time.Time
}

// ReservationSeatLog records a seat-level reservation change.
type ReservationSeatLog struct {
	ReservationSeatLogID uuid.UUID
	ReservationSeatID    int64
	SeatNumber           string
	ActionType           string
	ActorType            string
	ActorUserID          *uuid.UUID
	OccurredAt           time.Time
}

// TicketLog records a ticket lifecycle change (ISSUED / USED / CANCELED / EXPIRED).
// ReceiveMethod is only set on receive events (ON_SITE etc).
type TicketLog struct {
	TicketLogID   uuid.UUID
	TicketID      uuid.UUID
	ReceiveMethod string
	ActionType    string
	ActorType     string
	ActorUserID   *uuid.UUID
	OccurredAt    time.Time
}

// PaymentLog records a payment attempt outcome.
type PaymentLog struct {
	PaymentLogID uuid.UUID
	PaymentID    uuid.UUID
	Method       string
	RetryCount   int
	ActionType   string
	ActorType    string
	ActorUserID  *uuid.UUID
	OccurredAt   time.Time
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Domain event envelopes as published on the message bus. Field names follow
// the producers' JSON payloads. EventID is assigned by the publishing service
// and becomes the log record's primary key unchanged.

// AuthEvent is published by the auth service on login and account actions.
type AuthEvent struct {
	EventID     uuid.UUID  `json:"eventId"`
	ActionType  string     `json:"actionType"`
	ActorType   string     `json:"actorType"` // USER / SYSTEM
	ActorUserID *uuid.UUID `json:"actorUserId,omitempty"`
	OccurredAt  time.Time  `json:"occurredAt"`
}

// UserEvent is published by the user service on account changes.
type UserEvent struct {
	EventID     uuid.UUID  `json:"eventId"`
	UserID      uuid.UUID  `json:"userId"`
	ActionType  string     `json:"actionType"`
	ActorType   string     `json:"actorType"`
	ActorUserID *uuid.UUID `json:"actorUserId,omitempty"`
	OccurredAt  time.Time  `json:"occurredAt"`
}

// ProductEvent is published by the product service.
type ProductEvent struct {
	EventID     uuid.UUID  `json:"eventId"`
	ProductID   int64      `json:"productId"`
	ActionType  string     `json:"actionType"`
	ActorType   string     `json:"actorType"`
	ActorUserID *uuid.UUID `json:"actorUserId,omitempty"`
	OccurredAt  time.Time  `json:"occurredAt"`
}

// ArtHallEvent is published by the art-hall service for halls and stages.
type ArtHallEvent struct {
	EventID     uuid.UUID  `json:"eventId"`
	DomainType  string     `json:"domainType"` // ART_HALL | STAGE
	DomainID    int64      `json:"domainId"`
	ActionType  string     `json:"actionType"`
	ActorType   string     `json:"actorType"`
	ActorUserID *uuid.UUID `json:"actorUserId,omitempty"`
	OccurredAt  time.Time  `json:"occurredAt"`
}

// ReservationEvent is published by the reservation service.
type ReservationEvent struct {
	EventID       uuid.UUID  `json:"eventId"`
	ReservationID uuid.UUID  `json:"reservationId"`
	ActionType    string     `json:"actionType"`
	ActorType     string     `json:"actorType"`
	ActorUserID   *uuid.UUID `json:"actorUserId,omitempty"`
	OccurredAt    time.Time  `json:"occurredAt"`
}

// ReservationSeatEvent is published per seat on hold, confirm and cancel.
type ReservationSeatEvent struct {
	EventID           uuid.UUID  `json:"eventId"`
	ReservationSeatID int64      `json:"reservationSeatId"`
	SeatNumber        string     `json:"seatNumber"`
	ActionType        string     `json:"actionType"`
	ActorType         string     `json:"actorType"`
	ActorUserID       *uuid.UUID `json:"actorUserId,omitempty"`
	OccurredAt        time.Time  `json:"occurredAt"`
}

// TicketEvent is published by the ticket service.
type TicketEvent struct {
	EventID       uuid.UUID  `json:"eventId"`
	TicketID      uuid.UUID  `json:"ticketId"`
	ReceiveMethod string     `json:"receiveMethod,omitempty"`
	ActionType    string     `json:"actionType"`
	ActorType     string     `json:"actorType"`
	ActorUserID   *uuid.UUID `json:"actorUserId,omitempty"`
	OccurredAt    time.Time  `json:"occurredAt"`
}

// PaymentEvent is published by the payment service per payment attempt.
type PaymentEvent struct {
	EventID     uuid.UUID  `json:"eventId"`
	PaymentID   uuid.UUID  `json:"paymentId"`
	Method      string     `json:"method,omitempty"`
	RetryCount  int        `json:"retryCount"`
	ActionType  string     `json:"actionType"`
	ActorType   string     `json:"actorType"`
	ActorUserID *uuid.UUID `json:"actorUserId,omitempty"`
	OccurredAt  time.Time  `json:"occurredAt"`
}

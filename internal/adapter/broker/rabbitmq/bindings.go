package rabbitmq

import "github.com/Tickatch/log-service/internal/usecase"

const (
	// LogExchange is the topic exchange every upstream service publishes
	// domain log events to.
	LogExchange = "tickatch.log"

	// DeadLetterExchange receives messages the consumers reject.
	DeadLetterExchange = LogExchange + ".dlx"
)

// Binding declares one domain queue and its routing key. The dead-letter
// pair is derived: the DLQ mirrors the queue under "<queue>.dlq" and its
// routing key is the primary key prefixed with "dlq.".
type Binding struct {
	Domain     string
	Queue      string
	RoutingKey string
}

// DLQ returns the dead-letter queue name for this binding.
func (b Binding) DLQ() string {
	return b.Queue + ".dlq"
}

// DLQRoutingKey returns the dead-letter routing key for this binding.
func (b Binding) DLQRoutingKey() string {
	return "dlq." + b.RoutingKey
}

// LogBindings is the static queue and routing declaration table, one row per
// domain consumer.
var LogBindings = []Binding{
	{Domain: usecase.DomainAuth, Queue: "tickatch.auth.log.queue", RoutingKey: "auth.log"},
	{Domain: usecase.DomainUser, Queue: "tickatch.user.log.queue", RoutingKey: "user.log"},
	{Domain: usecase.DomainProduct, Queue: "tickatch.product.log.queue", RoutingKey: "product.log"},
	{Domain: usecase.DomainArtHall, Queue: "tickatch.arthall.log.queue", RoutingKey: "arthall.log"},
	{Domain: usecase.DomainReservation, Queue: "tickatch.reservation.log.queue", RoutingKey: "reservation.log"},
	{Domain: usecase.DomainReservationSeat, Queue: "tickatch.reservation-seat.log.queue", RoutingKey: "reservation-seat.log"},
	{Domain: usecase.DomainTicket, Queue: "tickatch.ticket.log.queue", RoutingKey: "ticket.log"},
	{Domain: usecase.DomainPayment, Queue: "tickatch.payment.log.queue", RoutingKey: "payment.log"},
}

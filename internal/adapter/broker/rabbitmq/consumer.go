package rabbitmq

import (
	"context"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Tickatch/log-service/internal/adapter/metrics"
	"github.com/Tickatch/log-service/internal/usecase"
)

// Consumer runs the delivery loop for the domain log queues. Admission
// control is the channel prefetch limit alone; there is no internal retry.
// A handler error rejects the delivery without requeue, which routes it to
// the domain's dead-letter queue via the queue's x-dead-letter arguments.
type Consumer struct {
	ch      *amqp.Channel
	logger  *slog.Logger
	metrics *metrics.ConsumerMetrics
}

// NewConsumer creates a consumer on the given channel and applies the
// prefetch limit.
func NewConsumer(ch *amqp.Channel, logger *slog.Logger, m *metrics.ConsumerMetrics, prefetch int) (*Consumer, error) {
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, fmt.Errorf("set qos: %w", err)
	}
	return &Consumer{
		ch:      ch,
		logger:  logger.With("component", "rabbitmq_consumer"),
		metrics: m,
	}, nil
}

// Consume binds a handler to one queue and blocks until the context is
// cancelled or the delivery channel closes.
func (c *Consumer) Consume(ctx context.Context, b Binding, h usecase.Handler) error {
	deliveries, err := c.ch.Consume(b.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", b.Queue, err)
	}

	c.logger.Info("consuming domain log queue", "domain", b.Domain, "queue", b.Queue)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed for queue %s", b.Queue)
			}
			c.handleDelivery(ctx, b.Domain, d, h)
		}
	}
}

// handleDelivery runs one message through the handler and settles it. The
// persistence transaction is bound to the acknowledgment: commit then ack,
// or reject without requeue on any error.
func (c *Consumer) handleDelivery(ctx context.Context, domainName string, d amqp.Delivery, h usecase.Handler) {
	if err := h(ctx, d.Body); err != nil {
		c.logger.Error("failed to record domain log, dead-lettering",
			"domain", domainName,
			"error", err,
			"redelivered", d.Redelivered,
		)
		if nackErr := d.Nack(false, false); nackErr != nil {
			c.logger.Error("failed to nack delivery", "domain", domainName, "error", nackErr)
		}
		c.metrics.EventsTotal.WithLabelValues(domainName, "dead_lettered").Inc()
		return
	}

	if ackErr := d.Ack(false); ackErr != nil {
		c.logger.Error("failed to ack delivery", "domain", domainName, "error", ackErr)
	}
	c.metrics.EventsTotal.WithLabelValues(domainName, "recorded").Inc()
}

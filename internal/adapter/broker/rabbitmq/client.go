package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Client wraps an AMQP connection and channel.
type Client struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewClient dials the broker and opens a channel.
func NewClient(url string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	return &Client{conn: conn, ch: ch}, nil
}

// Channel returns the underlying AMQP channel.
func (c *Client) Channel() *amqp.Channel {
	return c.ch
}

// Close closes the channel and the connection.
func (c *Client) Close() error {
	if err := c.ch.Close(); err != nil {
		c.conn.Close()
		return err
	}
	return c.conn.Close()
}

// DeclareTopology declares the log exchange, the dead-letter exchange, and
// for every binding its durable queue, dead-letter queue and both bindings.
// Declarations are idempotent on the broker side, so this is safe to run on
// every startup.
func (c *Client) DeclareTopology(bindings []Binding) error {
	if err := c.ch.ExchangeDeclare(LogExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", LogExchange, err)
	}
	if err := c.ch.ExchangeDeclare(DeadLetterExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", DeadLetterExchange, err)
	}

	for _, b := range bindings {
		args := amqp.Table{
			"x-dead-letter-exchange":    DeadLetterExchange,
			"x-dead-letter-routing-key": b.DLQRoutingKey(),
		}
		if _, err := c.ch.QueueDeclare(b.Queue, true, false, false, false, args); err != nil {
			return fmt.Errorf("declare queue %s: %w", b.Queue, err)
		}
		if err := c.ch.QueueBind(b.Queue, b.RoutingKey, LogExchange, false, nil); err != nil {
			return fmt.Errorf("bind queue %s: %w", b.Queue, err)
		}

		if _, err := c.ch.QueueDeclare(b.DLQ(), true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare queue %s: %w", b.DLQ(), err)
		}
		if err := c.ch.QueueBind(b.DLQ(), b.DLQRoutingKey(), DeadLetterExchange, false, nil); err != nil {
			return fmt.Errorf("bind queue %s: %w", b.DLQ(), err)
		}
	}

	return nil
}

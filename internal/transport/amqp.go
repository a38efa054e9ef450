package transport

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// AMQPBus is the concrete Bus adapter used by the deployed process,
// wired to RabbitMQ (AMQP 0-9-1). Topic names are used directly as
// queue names: a topic is declared durable and not auto-deleted, so
// Ingress/Egress can restart without losing queued messages.
type AMQPBus struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// DialAMQPBus connects to a RabbitMQ broker at url and opens one
// channel shared by Publish and Consume — adequate for a single
// ingress and a single egress sharing one process.
func DialAMQPBus(url string) (*AMQPBus, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}

	return &AMQPBus{conn: conn, ch: ch}, nil
}

func (b *AMQPBus) Close() {
	if err := b.ch.Close(); err != nil {
		log.Error().Err(err).Msg("closing amqp channel")
	}
	if err := b.conn.Close(); err != nil {
		log.Error().Err(err).Msg("closing amqp connection")
	}
}

func (b *AMQPBus) declare(topic string) (amqp.Queue, error) {
	return b.ch.QueueDeclare(topic, true, false, false, false, nil)
}

// Publish implements Bus.
func (b *AMQPBus) Publish(topic string, payload []byte) error {
	if _, err := b.declare(topic); err != nil {
		return fmt.Errorf("declare queue %s: %w", topic, err)
	}
	return b.ch.Publish("", topic, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        payload,
	})
}

// Consume implements Bus. The returned channel carries message bodies
// only; delivery acknowledgement happens automatically (autoAck), since
// the core has no message-redelivery or recovery story of its own.
func (b *AMQPBus) Consume(topic string) (<-chan []byte, error) {
	if _, err := b.declare(topic); err != nil {
		return nil, fmt.Errorf("declare queue %s: %w", topic, err)
	}

	deliveries, err := b.ch.Consume(topic, "", true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("consume queue %s: %w", topic, err)
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		for d := range deliveries {
			out <- d.Body
		}
	}()
	return out, nil
}

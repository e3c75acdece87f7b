package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// RabbitMQServiceImpl publishes saga events to a topic exchange. Consumers
// (fulfilment, alerting) live in other services and bind their own queues.
type RabbitMQServiceImpl struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewRabbitMQService(host, exchange string, topics []string) (*RabbitMQServiceImpl, error) {
	conn, err := amqp.Dial(host)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare an exchange: %w", err)
	}

	// Declare and bind one durable queue per topic so events published
	// before any consumer comes up are not dropped.
	for _, topic := range topics {
		_, err = ch.QueueDeclare(
			topic,
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to declare queue %s: %w", topic, err)
		}

		err = ch.QueueBind(
			topic,    // queue name
			topic,    // routing key (same as queue name)
			exchange, // exchange
			false,
			nil,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to bind queue %s: %w", topic, err)
		}
	}

	return &RabbitMQServiceImpl{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
	}, nil
}

// Publish sends a message to a topic on the exchange. The message is made
// persistent to survive broker restarts.
func (s *RabbitMQServiceImpl) Publish(topic string, body []byte) error {
	if topic == "" {
		return fmt.Errorf("topic cannot be empty")
	}
	if body == nil {
		return fmt.Errorf("message body cannot be nil")
	}

	if s.conn.IsClosed() {
		return fmt.Errorf("connection to RabbitMQ is closed")
	}
	if s.channel == nil {
		return fmt.Errorf("channel is not initialized")
	}

	err := s.channel.Publish(
		s.exchange, // exchange
		topic,      // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message to topic '%s': %w", topic, err)
	}

	return nil
}

// IsHealthy reports whether the underlying connection is usable.
func (s *RabbitMQServiceImpl) IsHealthy() bool {
	return s.conn != nil && !s.conn.IsClosed()
}

// Close closes the connection to RabbitMQ.
func (s *RabbitMQServiceImpl) Close() {
	s.channel.Close()
	s.conn.Close()
}

package queue

import (
	"context"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPChannel is the subset of *amqp.Channel used by AMQPClient.
type AMQPChannel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

// AMQPClient publishes queue messages to a durable RabbitMQ queue.
type AMQPClient struct {
	conn    *amqp.Connection
	channel AMQPChannel
	queue   string
}

// DialAMQP connects to RabbitMQ and declares the report queue.
func DialAMQP(url, queueName, deadLetterQueue string) (*AMQPClient, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("RABBITMQ_URL is required")
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}
	client, err := NewAMQPClient(ch, queueName, deadLetterQueue)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	client.conn = conn
	return client, nil
}

// NewAMQPClient declares queueName on an open channel. When deadLetterQueue
// is set it is declared too, and messages rejected without requeue are
// routed there through the default exchange.
func NewAMQPClient(ch AMQPChannel, queueName, deadLetterQueue string) (*AMQPClient, error) {
	queueName = strings.TrimSpace(queueName)
	if queueName == "" {
		return nil, fmt.Errorf("rabbitmq queue name is required")
	}
	var args amqp.Table
	if dlq := strings.TrimSpace(deadLetterQueue); dlq != "" {
		if _, err := ch.QueueDeclare(dlq, true, false, false, false, nil); err != nil {
			return nil, fmt.Errorf("declare rabbitmq dead-letter queue: %w", err)
		}
		args = amqp.Table{
			"x-dead-letter-exchange":    "",
			"x-dead-letter-routing-key": dlq,
		}
	}
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, args); err != nil {
		return nil, fmt.Errorf("declare rabbitmq queue: %w", err)
	}
	return &AMQPClient{channel: ch, queue: queueName}, nil
}

// Send publishes a persistent JSON message on the default exchange.
func (a *AMQPClient) Send(ctx context.Context, msg Message) error {
	payload, err := EncodeMessage(msg)
	if err != nil {
		return fmt.Errorf("encode amqp message: %w", err)
	}
	err = a.channel.PublishWithContext(ctx, "", a.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ReportID,
		Body:         payload,
	})
	if err != nil {
		return fmt.Errorf("amqp publish: %w", err)
	}
	return nil
}

// Consume starts delivering messages with manual acknowledgement.
func (a *AMQPClient) Consume(prefetch int) (<-chan amqp.Delivery, error) {
	if prefetch > 0 {
		if err := a.channel.Qos(prefetch, 0, false); err != nil {
			return nil, fmt.Errorf("amqp qos: %w", err)
		}
	}
	deliveries, err := a.channel.Consume(a.queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("amqp consume: %w", err)
	}
	return deliveries, nil
}

func (a *AMQPClient) Close() error {
	var firstErr error
	if a.channel != nil {
		if err := a.channel.Close(); err != nil {
			firstErr = err
		}
	}
	if a.conn != nil {
		if err := a.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

var _ Client = (*AMQPClient)(nil)

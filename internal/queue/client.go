package queue

import "context"

// Client publishes report jobs. SQSClient and AMQPClient implement it.
type Client interface {
	Send(ctx context.Context, msg Message) error
}

var (
	_ Client = (*SQSClient)(nil)
	_ Client = (*AMQPClient)(nil)
)

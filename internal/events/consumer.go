package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

type EventConsumer struct {
	client   pulsar.Client
	consumer pulsar.Consumer
}

// Receiver is the part of EventConsumer used by Consume.
type Receiver interface {
	ReceiveMessage(ctx context.Context) (pulsar.Message, error)
	Ack(msg pulsar.Message)
	Nack(msg pulsar.Message)
}

// Handler applies one decoded event.
type Handler func(ctx context.Context, event EventPayload) error

// NewEventConsumer initializes the Pulsar client and consumer.
func NewEventConsumer(pulsarURL, topic, subscription string) (*EventConsumer, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{URL: pulsarURL})
	if err != nil {
		return nil, fmt.Errorf("could not create Pulsar client: %w", err)
	}

	consumer, err := client.Subscribe(pulsar.ConsumerOptions{
		Topic:            topic,
		SubscriptionName: subscription,
		Type:             pulsar.Exclusive,
		DLQ: &pulsar.DLQPolicy{
			MaxDeliveries:   3,
			DeadLetterTopic: topic + "-dlq",
		},
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("could not create Pulsar consumer: %w", err)
	}

	return &EventConsumer{client: client, consumer: consumer}, nil
}

// ReceiveMessage retrieves a message from Pulsar.
func (c *EventConsumer) ReceiveMessage(ctx context.Context) (pulsar.Message, error) {
	msg, err := c.consumer.Receive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to receive message: %w", err)
	}
	return msg, nil
}

// Ack acknowledges a message.
func (c *EventConsumer) Ack(msg pulsar.Message) {
	c.consumer.Ack(msg)
}

// Nack negatively acknowledges a message.
func (c *EventConsumer) Nack(msg pulsar.Message) {
	c.consumer.Nack(msg)
}

// Close cleans up the Pulsar consumer and client.
func (c *EventConsumer) Close() {
	c.consumer.Close()
	c.client.Close()
}

// NewReceiveBackOff is the pause policy between failed receives. Consume gives
// up once it stops.
func NewReceiveBackOff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 5 * time.Minute
	return bo
}

// Consume hands every message to handle until ctx is done. Undecodable messages
// are acked and dropped; handler failures are nacked for redelivery.
func Consume(ctx context.Context, r Receiver, handle Handler, logger *zerolog.Logger) error {
	return ConsumeWithBackOff(ctx, r, handle, logger, NewReceiveBackOff())
}

// ConsumeWithBackOff is Consume with an explicit pause policy for receive errors.
// It returns the last receive error once bo is exhausted.
func ConsumeWithBackOff(ctx context.Context, r Receiver, handle Handler, logger *zerolog.Logger, bo backoff.BackOff) error {
	bo.Reset()
	for {
		msg, err := r.ReceiveMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return ctx.Err()
			}

			wait := bo.NextBackOff()
			if wait == backoff.Stop {
				return fmt.Errorf("error receiving message: %w", err)
			}
			logger.Error().Err(err).Dur("retry_in", wait).Msg("Error receiving message")

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			continue
		}
		bo.Reset()

		event, err := Decode(msg.Payload())
		if err != nil {
			logger.Warn().Err(err).Str("payload", string(msg.Payload())).Msg("Dropping undecodable event")
			r.Ack(msg)
			continue
		}

		if err := handle(ctx, event); err != nil {
			logger.Error().Err(err).Str("event_id", event.ID.String()).Msg("Failed to apply event")
			r.Nack(msg)
			continue
		}

		logger.Debug().Str("event_id", event.ID.String()).Str("action", event.Action).Msg("Event applied")
		r.Ack(msg)
	}
}

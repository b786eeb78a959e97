package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/google/uuid"
)

// Actions carried by EventPayload.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
)

// EventPayload reports a created or updated user record to the directory owner.
type EventPayload struct {
	ID        uuid.UUID       `json:"id"`
	Action    string          `json:"action"` // created, updated
	User      json.RawMessage `json:"user"`
	Timestamp int64           `json:"timestamp"`
}

// NewEventPayload stamps a fresh ID and the current time.
func NewEventPayload(action string, user json.RawMessage) EventPayload {
	return EventPayload{
		ID:        uuid.New(),
		Action:    action,
		User:      user,
		Timestamp: time.Now().UTC().Unix(),
	}
}

// Notifier is told about every change applied to the directory.
type Notifier interface {
	Notify(event EventPayload) error
	Close()
}

// NotifyTimeout bounds each send made through Notify.
const NotifyTimeout = 5 * time.Second

type EventPublisher struct {
	client      pulsar.Client
	producer    pulsar.Producer
	sendTimeout time.Duration
}

// NewEventPublisher initializes the Pulsar client and producer.
func NewEventPublisher(pulsarURL, topic string) (*EventPublisher, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL: pulsarURL,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create Pulsar client: %w", err)
	}

	producer, err := client.CreateProducer(pulsar.ProducerOptions{
		Topic: topic,
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("could not create Pulsar producer: %w", err)
	}

	return &EventPublisher{
		client:      client,
		producer:    producer,
		sendTimeout: NotifyTimeout,
	}, nil
}

// Notify publishes an event to Pulsar, giving up after the send timeout so a
// slow broker cannot hold up the caller.
func (p *EventPublisher) Notify(event EventPayload) error {
	ctx, cancel := context.WithTimeout(context.Background(), p.sendTimeout)
	defer cancel()
	return p.Publish(ctx, event)
}

// Publish serializes the event as JSON and sends it, keyed by event ID.
func (p *EventPublisher) Publish(ctx context.Context, event EventPayload) error {
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not serialize event payload: %w", err)
	}

	_, err = p.producer.Send(ctx, &pulsar.ProducerMessage{
		Key:     event.ID.String(),
		Payload: message,
	})
	if err != nil {
		return fmt.Errorf("could not send event to Pulsar: %w", err)
	}

	return nil
}

// Close closes the Pulsar producer and client.
func (p *EventPublisher) Close() {
	p.producer.Close()
	p.client.Close()
}

// Decode parses a message payload, rejecting unknown actions.
func Decode(payload []byte) (EventPayload, error) {
	var event EventPayload
	if err := json.Unmarshal(payload, &event); err != nil {
		return event, fmt.Errorf("could not decode event payload: %w", err)
	}

	switch event.Action {
	case ActionCreated, ActionUpdated:
	default:
		return event, fmt.Errorf("unknown event action %q", event.Action)
	}

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return event, nil
}

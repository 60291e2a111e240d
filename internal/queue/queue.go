// Package queue publishes domain events for workflows that live outside
// this service. Conflict adjudication is one of them: this layer only marks
// a booking as conflicted and hands the event to the broker; the priority
// rules belong to the consumer.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const ConflictQueue = "booking.conflict"

// BookingConflictEvent is emitted when a booking is flagged for priority
// adjudication.
type BookingConflictEvent struct {
	BookingID   string    `json:"booking_id"`
	VenueID     string    `json:"venue_id"`
	RequesterID string    `json:"requester_id"`
	Date        string    `json:"date"`
	Start       string    `json:"start"`
	End         string    `json:"end"`
	FlaggedAt   time.Time `json:"flagged_at"`
}

// Publisher writes events to RabbitMQ. A nil Publisher (no broker
// configured) drops events silently; flagging a conflict must never fail
// because the broker is down.
type Publisher struct {
	url string
}

func NewPublisher(url string) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{url: url}
}

// PublishBookingConflict declares the durable conflict queue and publishes
// the event as a persistent JSON message.
func (p *Publisher) PublishBookingConflict(ctx context.Context, event BookingConflictEvent) error {
	if p == nil {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("amqp dial failed: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("amqp channel open failed: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		ConflictQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return fmt.Errorf("amqp queue declare failed: %v", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal conflict event: %v", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", ConflictQueue, false, false, pub); err != nil {
		return fmt.Errorf("amqp publish failed: %v", err)
	}

	return nil
}

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Routing keys for booking lifecycle events.
const (
	BookingCreated = "booking.created"
	BookingMoved   = "booking.moved"
)

// BookingEvent is the message body published on the booking topic
// exchange. Consumers (notifications, analytics) are external.
type BookingEvent struct {
	EventID   string    `json:"eventId"`
	BookingID uint      `json:"bookingId"`
	UserID    uint      `json:"userId"`
	RoomID    uint      `json:"roomId"`
	At        time.Time `json:"at"`
}

type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// PublishBooking emits a booking lifecycle event. A nil receiver is a
// no-op so callers never have to branch on whether eventing is enabled.
func (p *Publisher) PublishBooking(ctx context.Context, key string, bookingID, userID, roomID uint) error {
	if p == nil {
		return nil
	}
	event := BookingEvent{
		EventID:   uuid.NewString(),
		BookingID: bookingID,
		UserID:    userID,
		RoomID:    roomID,
		At:        time.Now().UTC(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

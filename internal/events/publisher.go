// Package events publishes refund lifecycle notifications.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/tutorbase/backend/internal/models"
)

// Refund event types
const (
	RefundCompleted = "refund.completed"
	RefundFailed    = "refund.failed"
	RefundCancelled = "refund.cancelled"
)

// RefundEvent is the JSON body published for a refund state change
type RefundEvent struct {
	OccurredAt       time.Time           `json:"occurredAt"`
	ExternalRefundID *string             `json:"externalRefundId,omitempty"`
	Type             string              `json:"type"`
	RefundNumber     string              `json:"refundNumber"`
	Currency         string              `json:"currency"`
	Status           models.RefundStatus `json:"status"`
	RefundID         int64               `json:"refundId"`
	OrderID          int64               `json:"orderId"`
	CustomerID       int64               `json:"customerId"`
	Amount           int64               `json:"amount"`
}

// NewRefundEvent builds an event from the refund's current state
func NewRefundEvent(eventType string, refund *models.Refund, at time.Time) RefundEvent {
	return RefundEvent{
		OccurredAt:       at,
		ExternalRefundID: refund.ExternalRefundID,
		Type:             eventType,
		RefundNumber:     refund.RefundNumber,
		Currency:         refund.Currency,
		Status:           refund.Status,
		RefundID:         refund.ID,
		OrderID:          refund.OrderID,
		CustomerID:       refund.CustomerID,
		Amount:           refund.Amount,
	}
}

// Publisher delivers refund events
type Publisher interface {
	PublishRefundEvent(ctx context.Context, event RefundEvent) error
}

// amqpChannel is the part of *amqp.Channel the publisher uses
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher publishes events to a durable RabbitMQ queue
type RabbitPublisher struct {
	conn  *amqp.Connection
	chn   amqpChannel
	queue string
	mu    sync.Mutex
}

// NewRabbitPublisher dials RabbitMQ, opens a channel and declares the queue
func NewRabbitPublisher(url, queue string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	chn, err := conn.Channel()
	if err != nil {
		_ = conn.Close() //nolint:errcheck // already failing
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = chn.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		_ = conn.Close() //nolint:errcheck // already failing
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	return &RabbitPublisher{conn: conn, chn: chn, queue: queue}, nil
}

// PublishRefundEvent sends the event as a persistent JSON message
func (p *RabbitPublisher) PublishRefundEvent(ctx context.Context, event RefundEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode refund event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.chn.PublishWithContext(
		ctx,
		"",      // exchange
		p.queue, // routing key (queue name)
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         event.Type,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}
	return nil
}

// Close closes the channel and connection
func (p *RabbitPublisher) Close() error {
	if err := p.chn.Close(); err != nil {
		return err
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher drops every event. Used when RABBITMQ_URL is empty.
type NoopPublisher struct{}

// PublishRefundEvent does nothing
func (NoopPublisher) PublishRefundEvent(_ context.Context, _ RefundEvent) error {
	return nil
}

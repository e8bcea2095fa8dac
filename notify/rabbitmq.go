package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/junaidrashid-git/kula-api/models"
)

const (
	ordersExchange   = "orders_topic"
	orderPlacedRoute = "orders.placed"
)

// channel is the subset of *amqp.Channel used for publishing.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQ publishes order.placed events to a topic exchange.
type RabbitMQ struct {
	conn *amqp.Connection
	ch   channel
	now  func() time.Time
}

var _ Publisher = (*RabbitMQ)(nil)

// DialRabbitMQ connects to url and declares the orders exchange.
func DialRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(ordersExchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	log.Printf("🐇 Connected to RabbitMQ, publishing to %s", ordersExchange)
	return &RabbitMQ{conn: conn, ch: ch, now: time.Now}, nil
}

func (r *RabbitMQ) OrderPlaced(ctx context.Context, line models.OrderLine) error {
	placedAt := line.CreatedAt
	if placedAt.IsZero() {
		placedAt = r.now().UTC()
	}
	body, err := json.Marshal(OrderPlacedEvent{
		EventID:  uuid.NewString(),
		OrderID:  line.ID,
		UserID:   line.OwnerID,
		Name:     line.Name,
		Quantity: line.Quantity,
		Price:    line.UnitPrice.StringFixed(2),
		Total:    line.LineTotal().StringFixed(2),
		Location: line.Location,
		Notes:    line.Notes,
		PlacedAt: placedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.ch.PublishWithContext(ctx, ordersExchange, orderPlacedRoute, false, false, amqp.Publishing{
		DeliveryMode:  amqp.Persistent,
		ContentType:   "application/json",
		Body:          body,
		CorrelationId: line.ID,
		Timestamp:     r.now().UTC(),
		Headers:       amqp.Table{"x-source": "kula-api"},
	})
}

func (r *RabbitMQ) Close() {
	if r == nil {
		return
	}
	if r.ch != nil {
		_ = r.ch.Close()
	}
	if r.conn != nil {
		_ = r.conn.Close()
	}
}

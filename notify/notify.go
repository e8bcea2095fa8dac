// Package notify announces placed orders to the kitchen side.
package notify

import (
	"context"
	"time"

	"github.com/junaidrashid-git/kula-api/models"
)

// Publisher is told about every order line after it has been stored.
type Publisher interface {
	OrderPlaced(ctx context.Context, line models.OrderLine) error
}

// Nop drops every event. Used when no broker is configured.
type Nop struct{}

func (Nop) OrderPlaced(context.Context, models.OrderLine) error { return nil }

// OrderPlacedEvent is the message body of an order.placed event.
type OrderPlacedEvent struct {
	EventID  string    `json:"event_id"`
	OrderID  string    `json:"order_id"`
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Quantity int       `json:"qty"`
	Price    string    `json:"price"`
	Total    string    `json:"total"`
	Location string    `json:"location"`
	Notes    string    `json:"notes"`
	PlacedAt time.Time `json:"placed_at"`
}

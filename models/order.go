package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine is one placed order. Lines are created by this service and never
// updated or deleted by it.
type OrderLine struct {
	ID          string          `gorm:"primaryKey" json:"id"`
	OwnerID     string          `gorm:"index;not null" json:"user_id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"desc"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Quantity    int             `gorm:"not null" json:"qty"`
	Image       ImageKey        `gorm:"type:varchar(32)" json:"image"`
	Location    string          `json:"location"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
}

func (OrderLine) TableName() string { return "orders" }

// LineTotal is unit price times quantity.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderAck confirms a submitted order to the user.
type OrderAck struct {
	OrderID  string `json:"order_id"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Message is the confirmation text shown after a successful order.
func (a OrderAck) Message() string {
	loc := a.Location
	if loc == "" {
		loc = "Not provided"
	}
	return fmt.Sprintf("%d x %s\nDeliver to: %s", a.Quantity, a.Name, loc)
}

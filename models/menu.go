package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ImageKey names a bundled food image.
type ImageKey string

const DefaultImage ImageKey = "default"

// Food is the raw catalog record as kept in the "foods" collection.
type Food struct {
	ID    string          `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"not null" json:"name"`
	Desc  string          `json:"desc"`
	Price decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
}

func (Food) TableName() string { return "foods" }

// MenuItem is a display-ready catalog entry.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Image       ImageKey        `json:"image"`
}

// DisplayPrice renders the unit price the way the menu shows it, e.g. "$8.50".
func (m MenuItem) DisplayPrice() string {
	return "$" + m.UnitPrice.StringFixed(2)
}

// ParsePrice accepts the price shapes found in catalog records: numbers and
// strings with an optional leading "$". Anything else is zero.
func ParsePrice(v interface{}) decimal.Decimal {
	switch p := v.(type) {
	case decimal.Decimal:
		return p
	case float64:
		return decimal.NewFromFloat(p)
	case float32:
		return decimal.NewFromFloat32(p)
	case int:
		return decimal.NewFromInt(int64(p))
	case int64:
		return decimal.NewFromInt(p)
	case string:
		d, err := decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(p), "$"))
		if err != nil {
			return decimal.Zero
		}
		return d
	case fmt.Stringer:
		return ParsePrice(p.String())
	default:
		return decimal.Zero
	}
}

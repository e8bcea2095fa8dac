package fsstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/junaidrashid-git/kula-api/models"
)

func TestOrderFromData(t *testing.T) {
	created := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	line := orderFromData("o1", map[string]interface{}{
		"userId":    "u1",
		"name":      "Pizza",
		"desc":      "Cheesy",
		"price":     8.5,
		"qty":       int64(2),
		"image":     "pizza",
		"location":  "Gate B",
		"notes":     "",
		"createdAt": created,
	})

	assert.Equal(t, "o1", line.ID)
	assert.Equal(t, "u1", line.OwnerID)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "17.00", line.LineTotal().StringFixed(2))
	assert.Equal(t, models.ImageKey("pizza"), line.Image)
	assert.Equal(t, created, line.CreatedAt)
}

func TestOrderFromData_MissingTimestamp(t *testing.T) {
	line := orderFromData("o2", map[string]interface{}{"name": "Tea", "price": int64(1)})

	assert.True(t, line.CreatedAt.IsZero())
	assert.Equal(t, 0, line.Quantity)
	assert.Equal(t, "1.00", line.UnitPrice.StringFixed(2))
}

func TestFoodFromData_StringPrice(t *testing.T) {
	food := foodFromData("f1", map[string]interface{}{"name": "Githeri", "desc": "Maize and beans", "price": "$4.75"})

	assert.Equal(t, "f1", food.ID)
	assert.Equal(t, "Githeri", food.Name)
	assert.Equal(t, "4.75", food.Price.StringFixed(2))
}

package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/junaidrashid-git/kula-api/models"
)

// StarterMenu is loaded into empty self-hosted stores by the server's -seed
// flag.
var StarterMenu = []models.Food{
	{Name: "Tea", Desc: "Hot spiced chai", Price: decimal.RequireFromString("1.00")},
	{Name: "Githeri", Desc: "Maize and beans stew", Price: decimal.RequireFromString("3.50")},
	{Name: "Burger", Desc: "Beef burger with fries", Price: decimal.RequireFromString("5.00")},
	{Name: "Pizza", Desc: "Cheese pizza slice", Price: decimal.RequireFromString("8.50")},
	{Name: "Chicken", Desc: "Quarter grilled chicken", Price: decimal.RequireFromString("6.75")},
}

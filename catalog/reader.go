// Package catalog reads the menu from the document store.
package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/store"
)

// ErrItemNotFound is returned by FindItem for unknown ids.
var ErrItemNotFound = errors.New("menu item not found")

type Reader struct {
	foods store.Catalog
}

func NewReader(foods store.Catalog) *Reader {
	return &Reader{foods: foods}
}

// ListMenu reads the whole catalog once, in store order.
func (r *Reader) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	foods, err := r.foods.ListFoods(ctx)
	if err != nil {
		return nil, &models.FetchError{Msg: "Could not load the menu", Err: err}
	}
	items := make([]models.MenuItem, 0, len(foods))
	for _, f := range foods {
		items = append(items, ToMenuItem(f))
	}
	return items, nil
}

// FindItem resolves a single menu item by id.
func (r *Reader) FindItem(ctx context.Context, id string) (models.MenuItem, error) {
	food, err := r.foods.GetFood(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.MenuItem{}, ErrItemNotFound
		}
		return models.MenuItem{}, &models.FetchError{Msg: "Could not load the menu item", Err: err}
	}
	return ToMenuItem(food), nil
}

func ToMenuItem(f models.Food) models.MenuItem {
	return models.MenuItem{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Desc,
		UnitPrice:   f.Price,
		Image:       ImageFor(f.Name),
	}
}

// MenuTitle is the heading shown above the menu for the day of now.
func MenuTitle(now time.Time) string {
	return "Our Menu Today: " + now.Format("1/2/2006")
}

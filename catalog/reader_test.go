package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/store"
)

type fakeCatalog struct {
	foods []models.Food
	err   error
}

func (f *fakeCatalog) ListFoods(ctx context.Context) ([]models.Food, error) {
	return f.foods, f.err
}

func (f *fakeCatalog) GetFood(ctx context.Context, id string) (models.Food, error) {
	if f.err != nil {
		return models.Food{}, f.err
	}
	for _, food := range f.foods {
		if food.ID == id {
			return food, nil
		}
	}
	return models.Food{}, store.ErrNotFound
}

func TestListMenu_KeepsStoreOrderAndMapsImages(t *testing.T) {
	r := NewReader(&fakeCatalog{foods: []models.Food{
		{ID: "2", Name: "Sushi", Desc: "Rolls", Price: decimal.RequireFromString("12")},
		{ID: "1", Name: "Tea", Desc: "Hot", Price: decimal.RequireFromString("1.5")},
	}})

	items, err := r.ListMenu(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Sushi", items[0].Name)
	assert.Equal(t, models.DefaultImage, items[0].Image)
	assert.Equal(t, models.ImageKey("tea"), items[1].Image)
	assert.Equal(t, "Hot", items[1].Description)
	assert.Equal(t, "$1.50", items[1].DisplayPrice())
}

func TestListMenu_FetchError(t *testing.T) {
	r := NewReader(&fakeCatalog{err: errors.New("unavailable")})

	items, err := r.ListMenu(context.Background())

	assert.Nil(t, items)
	var ferr *models.FetchError
	require.ErrorAs(t, err, &ferr)
	assert.EqualError(t, errors.Unwrap(err), "unavailable")
}

func TestFindItem(t *testing.T) {
	r := NewReader(&fakeCatalog{foods: []models.Food{{ID: "b1", Name: "Burger", Price: decimal.RequireFromString("5")}}})

	item, err := r.FindItem(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, models.ImageKey("burger"), item.Image)

	_, err = r.FindItem(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestMenuTitle(t *testing.T) {
	assert.Equal(t, "Our Menu Today: 10/5/2026", MenuTitle(time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC)))
}

package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/store"
)

func TestSeedFoods_SkipsKnownNames(t *testing.T) {
	s := New(models.Food{ID: "f1", Name: "Tea", Price: decimal.RequireFromString("1.00")})
	require.NoError(t, s.SeedFoods(context.Background(), []models.Food{{Name: "Tea"}, {Name: "Githeri"}}))

	foods, err := s.ListFoods(context.Background())
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "f1", foods[0].ID)
	assert.NotEmpty(t, foods[1].ID)
}

func TestGetFood(t *testing.T) {
	s := New(models.Food{ID: "f1", Name: "Tea"})

	f, err := s.GetFood(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "Tea", f.Name)

	_, err = s.GetFood(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestWatchOrders(t *testing.T) {
	s := New()
	ctx := context.Background()
	w, err := s.WatchOrders(ctx, "u1")
	require.NoError(t, err)
	defer w.Stop()

	lines, err := w.Next()
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, err = s.CreateOrder(ctx, models.OrderLine{OwnerID: "u2", Name: "Tea", Quantity: 1})
	require.NoError(t, err)
	created, err := s.CreateOrder(ctx, models.OrderLine{OwnerID: "u1", Name: "Pizza", Quantity: 2})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	lines, err = w.Next()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Pizza", lines[0].Name)
	assert.Equal(t, 1, s.Watchers("u1"))
}

func TestProfiles(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.GetProfile(ctx, "u1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.PutProfile(ctx, models.UserProfile{ID: "u1", Name: "Achieng"}))
	p, err := s.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Achieng", p.Name)
}

func TestFail(t *testing.T) {
	s := New()
	s.Fail = errors.New("unavailable")

	_, err := s.ListFoods(context.Background())
	assert.Error(t, err)
	_, err = s.CreateOrder(context.Background(), models.OrderLine{OwnerID: "u1"})
	assert.Error(t, err)
}

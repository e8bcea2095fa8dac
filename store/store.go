// Package store defines the document-store ports used by the catalog, cart
// and profile services. Adapters live in fsstore (Cloud Firestore) and
// pgstore (PostgreSQL through GORM).
package store

import (
	"context"
	"errors"

	"github.com/junaidrashid-git/kula-api/models"
)

var (
	// ErrNotFound is returned when a keyed record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrWatchStopped is returned by OrderWatch.Next once the watch has been
	// stopped or its context cancelled.
	ErrWatchStopped = errors.New("watch stopped")
)

// Catalog is the read-only "foods" collection.
type Catalog interface {
	ListFoods(ctx context.Context) ([]models.Food, error)
	GetFood(ctx context.Context, id string) (models.Food, error)
}

// Orders is the "orders" collection. Lines are only ever created.
type Orders interface {
	// CreateOrder stores line under a new id. The store assigns the
	// creation time.
	CreateOrder(ctx context.Context, line models.OrderLine) (models.OrderLine, error)
	// WatchOrders opens a live query of the lines owned by ownerID.
	// Cancelling ctx unblocks Next.
	WatchOrders(ctx context.Context, ownerID string) (OrderWatch, error)
}

// OrderWatch delivers the full line set of one owner each time it changes.
// The first call to Next returns the current set.
type OrderWatch interface {
	Next() ([]models.OrderLine, error)
	Stop()
}

// Users is the "users" collection.
type Users interface {
	PutProfile(ctx context.Context, p models.UserProfile) error
	GetProfile(ctx context.Context, id string) (models.UserProfile, error)
}

// Store bundles every collection behind one connection.
type Store interface {
	Catalog
	Orders
	Users
	Close() error
}

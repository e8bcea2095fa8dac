// Package memstore keeps the catalog, orders and profiles in process memory.
// It backs STORE_DRIVER=memory for local runs and the HTTP tests.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/store"
)

type Store struct {
	mu     sync.RWMutex
	foods  []models.Food
	orders []models.OrderLine
	users  map[string]models.UserProfile
	hub    *store.Hub
	now    func() time.Time

	// Fail, when set, is returned by every read and write.
	Fail error
}

var _ store.Store = (*Store)(nil)

func New(foods ...models.Food) *Store {
	s := &Store{
		users: make(map[string]models.UserProfile),
		hub:   store.NewHub(),
		now:   time.Now,
	}
	s.SeedFoods(context.Background(), foods)
	return s
}

// SeedFoods adds foods whose name is not in the catalog yet.
func (s *Store) SeedFoods(ctx context.Context, foods []models.Food) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range foods {
		if s.hasFood(f.Name) {
			continue
		}
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		s.foods = append(s.foods, f)
	}
	return nil
}

func (s *Store) hasFood(name string) bool {
	for _, f := range s.foods {
		if f.Name == name {
			return true
		}
	}
	return false
}

func (s *Store) Close() error { return nil }

func (s *Store) ListFoods(ctx context.Context) ([]models.Food, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Fail != nil {
		return nil, s.Fail
	}
	return append([]models.Food(nil), s.foods...), nil
}

func (s *Store) GetFood(ctx context.Context, id string) (models.Food, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Fail != nil {
		return models.Food{}, s.Fail
	}
	for _, f := range s.foods {
		if f.ID == id {
			return f, nil
		}
	}
	return models.Food{}, store.ErrNotFound
}

func (s *Store) CreateOrder(ctx context.Context, line models.OrderLine) (models.OrderLine, error) {
	s.mu.Lock()
	if s.Fail != nil {
		s.mu.Unlock()
		return models.OrderLine{}, s.Fail
	}
	line.ID = uuid.NewString()
	line.CreatedAt = s.now().UTC()
	s.orders = append(s.orders, line)
	s.mu.Unlock()

	s.hub.Publish(line.OwnerID)
	return line, nil
}

func (s *Store) WatchOrders(ctx context.Context, ownerID string) (store.OrderWatch, error) {
	return s.hub.Watch(ctx, ownerID, func(ctx context.Context) ([]models.OrderLine, error) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		if s.Fail != nil {
			return nil, s.Fail
		}
		var lines []models.OrderLine
		for _, l := range s.orders {
			if l.OwnerID == ownerID {
				lines = append(lines, l)
			}
		}
		return lines, nil
	}), nil
}

// Watchers reports how many live order queries of ownerID are open.
func (s *Store) Watchers(ownerID string) int { return s.hub.Watchers(ownerID) }

func (s *Store) PutProfile(ctx context.Context, p models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return s.Fail
	}
	s.users[p.ID] = p
	return nil
}

func (s *Store) GetProfile(ctx context.Context, id string) (models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Fail != nil {
		return models.UserProfile{}, s.Fail
	}
	p, ok := s.users[id]
	if !ok {
		return models.UserProfile{}, store.ErrNotFound
	}
	return p, nil
}

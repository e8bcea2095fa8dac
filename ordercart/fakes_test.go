package ordercart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/store"
)

// memOrders is an in-memory orders collection whose watches wake on every
// write for the same owner.
type memOrders struct {
	mu        sync.Mutex
	lines     []models.OrderLine
	seq       int
	clock     time.Time
	createErr error
	watchErr  error
	watchers  map[string][]chan struct{}
	stopped   int
}

func newMemOrders() *memOrders {
	return &memOrders{
		clock:    time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
		watchers: map[string][]chan struct{}{},
	}
}

func (m *memOrders) CreateOrder(ctx context.Context, line models.OrderLine) (models.OrderLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return models.OrderLine{}, m.createErr
	}
	m.seq++
	m.clock = m.clock.Add(time.Minute)
	line.ID = fmt.Sprintf("o%d", m.seq)
	line.CreatedAt = m.clock
	m.lines = append(m.lines, line)
	for _, ch := range m.watchers[line.OwnerID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return line, nil
}

func (m *memOrders) WatchOrders(ctx context.Context, ownerID string) (store.OrderWatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watchErr != nil {
		return nil, m.watchErr
	}
	ch := make(chan struct{}, 1)
	m.watchers[ownerID] = append(m.watchers[ownerID], ch)
	return &memWatch{ctx: ctx, m: m, owner: ownerID, wake: ch}, nil
}

func (m *memOrders) ownedBy(owner string) []models.OrderLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.OrderLine
	for _, l := range m.lines {
		if l.OwnerID == owner {
			out = append(out, l)
		}
	}
	return out
}

func (m *memOrders) stops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

type memWatch struct {
	ctx    context.Context
	m      *memOrders
	owner  string
	wake   chan struct{}
	primed bool
}

func (w *memWatch) Next() ([]models.OrderLine, error) {
	if w.primed {
		select {
		case <-w.wake:
		case <-w.ctx.Done():
			return nil, store.ErrWatchStopped
		}
	}
	w.primed = true
	return w.m.ownedBy(w.owner), nil
}

func (w *memWatch) Stop() {
	w.m.mu.Lock()
	defer w.m.mu.Unlock()
	w.m.stopped++
}

type failingPublisher struct{ calls int }

func (p *failingPublisher) OrderPlaced(ctx context.Context, line models.OrderLine) error {
	p.calls++
	return errors.New("broker down")
}

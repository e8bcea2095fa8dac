package store

import (
	"context"
	"sync"

	"github.com/junaidrashid-git/kula-api/models"
)

// Hub wakes the order watchers of one owner after a write, for backends
// without a native live query. Wake-ups are coalesced: a watcher re-reads the
// full line set, so one pending signal is enough.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[*waiter]struct{}
}

type waiter struct {
	owner string
	ch    chan struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*waiter]struct{})}
}

func (h *Hub) subscribe(owner string) *waiter {
	w := &waiter{owner: owner, ch: make(chan struct{}, 1)}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[owner] == nil {
		h.subs[owner] = make(map[*waiter]struct{})
	}
	h.subs[owner][w] = struct{}{}
	return w
}

func (h *Hub) unsubscribe(w *waiter) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[w.owner], w)
	if len(h.subs[w.owner]) == 0 {
		delete(h.subs, w.owner)
	}
}

// Publish wakes every open watch of owner. It never blocks.
func (h *Hub) Publish(owner string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for w := range h.subs[owner] {
		select {
		case w.ch <- struct{}{}:
		default:
		}
	}
}

// Watchers reports how many watches of owner are open.
func (h *Hub) Watchers(owner string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[owner])
}

// ReadFunc loads the current line set of one owner.
type ReadFunc func(ctx context.Context) ([]models.OrderLine, error)

// Watch returns an OrderWatch that calls read once up front and again after
// every Publish for owner.
func (h *Hub) Watch(ctx context.Context, owner string, read ReadFunc) OrderWatch {
	return &hubWatch{
		ctx:     ctx,
		hub:     h,
		w:       h.subscribe(owner),
		read:    read,
		stopped: make(chan struct{}),
	}
}

type hubWatch struct {
	ctx    context.Context
	hub    *Hub
	w      *waiter
	read   ReadFunc
	primed bool

	stopOnce sync.Once
	stopped  chan struct{}
}

func (w *hubWatch) Next() ([]models.OrderLine, error) {
	if w.primed {
		select {
		case <-w.w.ch:
		case <-w.ctx.Done():
			return nil, ErrWatchStopped
		case <-w.stopped:
			return nil, ErrWatchStopped
		}
	} else {
		select {
		case <-w.ctx.Done():
			return nil, ErrWatchStopped
		case <-w.stopped:
			return nil, ErrWatchStopped
		default:
		}
	}
	w.primed = true

	lines, err := w.read(w.ctx)
	if err != nil {
		if w.ctx.Err() != nil {
			return nil, ErrWatchStopped
		}
		return nil, err
	}
	return lines, nil
}

func (w *hubWatch) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopped)
		w.hub.unsubscribe(w.w)
	})
}

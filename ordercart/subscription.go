package ordercart

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/store"
)

// Subscription delivers a freshly priced Cart on C every time the owner's
// order set changes. C is closed when the subscription ends.
type Subscription struct {
	C <-chan models.Cart

	owner  string
	cancel context.CancelFunc
	done   chan struct{}

	mu  sync.Mutex
	err error
}

// Close stops the subscription and waits for it to wind down. No Cart is
// delivered after Close returns. It is safe to call more than once.
func (s *Subscription) Close() {
	s.cancel()
	<-s.done
}

// Err returns the error that ended the subscription, if any.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Subscription) run(ctx context.Context, watch store.OrderWatch, out chan<- models.Cart) {
	defer close(s.done)
	defer close(out)
	defer watch.Stop()

	log.Printf("🛒 Cart subscription opened for %s", s.owner)
	defer log.Printf("🛒 Cart subscription closed for %s", s.owner)

	for {
		lines, err := watch.Next()
		if err != nil {
			if !errors.Is(err, store.ErrWatchStopped) {
				log.Printf("❌ Cart subscription for %s failed: %v", s.owner, err)
				s.mu.Lock()
				s.err = err
				s.mu.Unlock()
			}
			return
		}
		if ctx.Err() != nil {
			return
		}

		select {
		case out <- models.NewCart(lines):
		case <-ctx.Done():
			return
		}
	}
}

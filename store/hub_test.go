package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/kula-api/models"
)

func countingRead(calls *int) ReadFunc {
	return func(ctx context.Context) ([]models.OrderLine, error) {
		*calls++
		return []models.OrderLine{{ID: "o1"}}, nil
	}
}

func TestHub_PublishReachesOnlyOwner(t *testing.T) {
	h := NewHub()
	alice := h.subscribe("alice")
	bob := h.subscribe("bob")

	h.Publish("alice")

	select {
	case <-alice.ch:
	default:
		t.Fatal("alice was not woken")
	}
	select {
	case <-bob.ch:
		t.Fatal("bob should not be woken")
	default:
	}
}

func TestHub_PublishCoalesces(t *testing.T) {
	h := NewHub()
	w := h.subscribe("alice")

	h.Publish("alice")
	h.Publish("alice")
	h.Publish("alice")

	assert.Len(t, w.ch, 1)
}

func TestHub_Unsubscribe(t *testing.T) {
	h := NewHub()
	a := h.subscribe("alice")
	b := h.subscribe("alice")
	require.Equal(t, 2, h.Watchers("alice"))

	h.unsubscribe(a)
	assert.Equal(t, 1, h.Watchers("alice"))
	h.unsubscribe(b)
	assert.Equal(t, 0, h.Watchers("alice"))

	h.Publish("alice") // no watchers left, must not block
}

func TestWatch_ReadsOnceThenOnPublish(t *testing.T) {
	h := NewHub()
	var calls int
	w := h.Watch(context.Background(), "alice", countingRead(&calls))
	defer w.Stop()

	lines, err := w.Next()
	require.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, 1, calls)

	h.Publish("alice")
	_, err = w.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWatch_StopUnblocksNext(t *testing.T) {
	h := NewHub()
	var calls int
	w := h.Watch(context.Background(), "alice", countingRead(&calls))
	_, err := w.Next()
	require.NoError(t, err)

	errc := make(chan error, 1)
	go func() {
		_, err := w.Next()
		errc <- err
	}()

	w.Stop()
	w.Stop()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, ErrWatchStopped)
	case <-time.After(time.Second):
		t.Fatal("Next did not return after Stop")
	}
	assert.Equal(t, 0, h.Watchers("alice"))
}

func TestWatch_ContextCancel(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	var calls int
	w := h.Watch(ctx, "alice", countingRead(&calls))
	defer w.Stop()

	cancel()
	_, err := w.Next()
	assert.ErrorIs(t, err, ErrWatchStopped)
	assert.Equal(t, 0, calls)
}

func TestWatch_ReadError(t *testing.T) {
	h := NewHub()
	boom := errors.New("connection reset")
	w := h.Watch(context.Background(), "alice", func(ctx context.Context) ([]models.OrderLine, error) {
		return nil, boom
	})
	defer w.Stop()

	_, err := w.Next()
	assert.ErrorIs(t, err, boom)
}

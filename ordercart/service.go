// Package ordercart places orders and keeps a live, priced view of a user's
// orders.
package ordercart

import (
	"context"
	"errors"
	"log"

	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/notify"
	"github.com/junaidrashid-git/kula-api/store"
)

var (
	// ErrNotSignedIn is returned when the session has no provider account to
	// own orders. Admin shortcut sessions are in this group.
	ErrNotSignedIn = errors.New("sign in to place an order")
	// ErrNoItemSelected is returned when an order is confirmed without an item.
	ErrNoItemSelected = errors.New("no menu item selected")
)

type Service struct {
	orders    store.Orders
	publisher notify.Publisher
}

func NewService(orders store.Orders, publisher notify.Publisher) *Service {
	if publisher == nil {
		publisher = notify.Nop{}
	}
	return &Service{orders: orders, publisher: publisher}
}

// SubmitOrder stores one order line for the session's user. Store failures
// come back as *models.SubmitError carrying the store's message.
func (s *Service) SubmitOrder(ctx context.Context, sess models.Session, item *models.MenuItem, quantity int, location, notes string) (models.OrderAck, error) {
	if !canOwnOrders(sess) {
		return models.OrderAck{}, ErrNotSignedIn
	}
	if item == nil {
		return models.OrderAck{}, ErrNoItemSelected
	}
	if quantity < 1 {
		return models.OrderAck{}, &models.ValidationError{Msg: "Quantity must be at least 1"}
	}

	line, err := s.orders.CreateOrder(ctx, models.OrderLine{
		OwnerID:     sess.UserID,
		Name:        item.Name,
		Description: item.Description,
		UnitPrice:   item.UnitPrice,
		Quantity:    quantity,
		Image:       item.Image,
		Location:    location,
		Notes:       notes,
	})
	if err != nil {
		return models.OrderAck{}, &models.SubmitError{Msg: err.Error(), Err: err}
	}

	if err := s.publisher.OrderPlaced(ctx, line); err != nil {
		log.Printf("⚠️ Failed to publish order %s: %v", line.ID, err)
	}

	return models.OrderAck{
		OrderID:  line.ID,
		Quantity: quantity,
		Name:     item.Name,
		Location: location,
	}, nil
}

// ObserveCart opens a live cart for ownerID. The caller must Close the
// subscription when it stops reading.
func (s *Service) ObserveCart(ctx context.Context, ownerID string) (*Subscription, error) {
	if ownerID == "" || ownerID == models.AdminUserID {
		return nil, ErrNotSignedIn
	}

	ctx, cancel := context.WithCancel(ctx)
	watch, err := s.orders.WatchOrders(ctx, ownerID)
	if err != nil {
		cancel()
		return nil, &models.FetchError{Msg: "Could not load your cart", Err: err}
	}

	out := make(chan models.Cart)
	sub := &Subscription{
		C:      out,
		owner:  ownerID,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go sub.run(ctx, watch, out)
	return sub, nil
}

// Snapshot returns the current cart of ownerID.
func (s *Service) Snapshot(ctx context.Context, ownerID string) (models.Cart, error) {
	sub, err := s.ObserveCart(ctx, ownerID)
	if err != nil {
		return models.Cart{}, err
	}
	defer sub.Close()

	select {
	case cart, ok := <-sub.C:
		if !ok {
			if err := sub.Err(); err != nil {
				return models.Cart{}, &models.FetchError{Msg: "Could not load your cart", Err: err}
			}
			return models.Cart{}, ctx.Err()
		}
		return cart, nil
	case <-ctx.Done():
		return models.Cart{}, ctx.Err()
	}
}

func canOwnOrders(sess models.Session) bool {
	return sess.Authenticated && sess.UserID != "" && sess.UserID != models.AdminUserID
}

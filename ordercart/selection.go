package ordercart

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/junaidrashid-git/kula-api/models"
)

// State is a step of the order-placement flow.
type State int

const (
	Idle State = iota
	ItemSelected
	Submitting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case ItemSelected:
		return "item-selected"
	case Submitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Submitter places orders. *Service implements it.
type Submitter interface {
	SubmitOrder(ctx context.Context, sess models.Session, item *models.MenuItem, quantity int, location, notes string) (models.OrderAck, error)
}

// Selection is the order being prepared: the chosen item with its quantity,
// delivery location and notes.
type Selection struct {
	state    State
	item     *models.MenuItem
	quantity int
	location string
	notes    string
}

// NewSelection returns a selection of item already filled in, ready to
// Confirm.
func NewSelection(item models.MenuItem, quantity int, location, notes string) *Selection {
	return &Selection{
		state:    ItemSelected,
		item:     &item,
		quantity: quantity,
		location: location,
		notes:    notes,
	}
}

func (s *Selection) State() State { return s.state }

func (s *Selection) Item() *models.MenuItem { return s.item }

func (s *Selection) Quantity() int { return s.quantity }

// Select starts a fresh order for item: quantity 1, no location, no notes.
func (s *Selection) Select(item models.MenuItem) {
	s.item = &item
	s.quantity = 1
	s.location = ""
	s.notes = ""
	s.state = ItemSelected
}

func (s *Selection) SetQuantity(q int) error {
	if s.state != ItemSelected {
		return ErrNoItemSelected
	}
	s.quantity = q
	return nil
}

func (s *Selection) SetLocation(location string) error {
	if s.state != ItemSelected {
		return ErrNoItemSelected
	}
	s.location = location
	return nil
}

func (s *Selection) SetNotes(notes string) error {
	if s.state != ItemSelected {
		return ErrNoItemSelected
	}
	s.notes = notes
	return nil
}

// Total is the price shown before confirming.
func (s *Selection) Total() decimal.Decimal {
	if s.item == nil {
		return decimal.Zero
	}
	return s.item.UnitPrice.Mul(decimal.NewFromInt(int64(s.quantity)))
}

// Cancel drops the selection.
func (s *Selection) Cancel() { *s = Selection{} }

// Confirm submits the selection. On success the selection is cleared; on
// failure it stays selected with its inputs so the user can retry.
func (s *Selection) Confirm(ctx context.Context, sub Submitter, sess models.Session) (models.OrderAck, error) {
	if s.state != ItemSelected {
		return models.OrderAck{}, ErrNoItemSelected
	}
	s.state = Submitting
	ack, err := sub.SubmitOrder(ctx, sess, s.item, s.quantity, s.location, s.notes)
	if err != nil {
		s.state = ItemSelected
		return models.OrderAck{}, err
	}
	s.Cancel()
	return ack, nil
}

// Package checkout implements the inquiry-only checkout flow: collect a
// delivery address, record the cart as an inquiry, and grant loyalty credit.
package checkout

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mohteeflair/storefront/internal/cart"
	"github.com/mohteeflair/storefront/internal/inquiry"
	"github.com/mohteeflair/storefront/internal/logging"
	"github.com/mohteeflair/storefront/internal/session"
)

var (
	// ErrEmptyAddress rejects a submission without a delivery address.
	ErrEmptyAddress = errors.New("Please enter your delivery address.")
	// ErrEmptyCart rejects a submission with nothing in the cart.
	ErrEmptyCart = errors.New("Your cart is empty.")
)

// Service turns the current cart into a recorded inquiry.
type Service struct {
	inquiries      inquiry.Repository
	cart           *cart.Cart
	sessions       *session.Store
	log            logging.Logger
	pointsPerOrder int
}

func NewService(repo inquiry.Repository, c *cart.Cart, s *session.Store, log logging.Logger, pointsPerOrder int) *Service {
	return &Service{
		inquiries:      repo,
		cart:           c,
		sessions:       s,
		log:            log.With("component", "checkout"),
		pointsPerOrder: pointsPerOrder,
	}
}

// Submit records the cart contents as an inquiry for the given address, then
// clears the cart. For registered sessions the order counter is bumped and
// the per-order loyalty reward granted; guests get neither (accrual is a
// silent no-op for them). Accrual failures do not void a recorded inquiry.
func (s *Service) Submit(ctx context.Context, address string) (*inquiry.Inquiry, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrEmptyAddress
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	inq := &inquiry.Inquiry{
		ID:        uuid.NewString(),
		Address:   address,
		Total:     s.cart.Total(),
		CreatedAt: time.Now().UTC(),
	}
	for _, l := range items {
		inq.Lines = append(inq.Lines, inquiry.Line{
			ProductID: l.ProductID,
			Name:      l.Name,
			Variant:   l.Variant,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}

	if err := s.inquiries.Create(ctx, inq); err != nil {
		return nil, err
	}
	s.cart.Clear()

	if err := s.sessions.IncrementOrders(ctx); err != nil {
		s.log.Warn(ctx, "failed to bump order counter", "error", err)
	}
	if err := s.sessions.AddPoints(ctx, s.pointsPerOrder); err != nil {
		s.log.Warn(ctx, "failed to grant loyalty points", "error", err)
	}

	s.log.Info(ctx, "inquiry recorded", "id", inq.ID, "lines", len(inq.Lines))
	return inq, nil
}

// History lists previously recorded inquiries, newest first.
func (s *Service) History(ctx context.Context) ([]inquiry.Inquiry, error) {
	return s.inquiries.GetAll(ctx)
}

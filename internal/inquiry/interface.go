// Package inquiry records checkout inquiries. Checkout collects a delivery
// address only; there is no payment step, so an inquiry is the terminal
// artifact of an order flow.
package inquiry

import (
	"context"
	"time"
)

// Line is one ordered position captured at submission time. Prices are
// denormalized into the inquiry so later catalog changes don't rewrite
// history.
type Line struct {
	ProductID string
	Name      string
	Variant   string
	UnitPrice float64
	Quantity  int
}

// Inquiry is a submitted checkout request.
type Inquiry struct {
	ID        string
	Address   string
	Total     float64
	CreatedAt time.Time
	Lines     []Line
}

// Repository stores inquiries durably.
type Repository interface {
	// Create persists the inquiry and all its lines atomically.
	Create(ctx context.Context, inq *Inquiry) error

	// GetAll returns all inquiries, newest first, with lines attached.
	GetAll(ctx context.Context) ([]Inquiry, error)
}

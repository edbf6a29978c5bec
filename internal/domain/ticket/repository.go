package ticket

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no ticket matches the lookup.
var ErrNotFound = errors.New("ticket not found")

type Repository interface {
	// Create persists the ticket and assigns its ID and display
	// number. The number is derived from the auto-assigned ID, so the
	// row is inserted with the placeholder and patched in the same
	// transaction.
	Create(ctx context.Context, t *Ticket) error

	// GetByNumber retrieves a ticket by display number.
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
}

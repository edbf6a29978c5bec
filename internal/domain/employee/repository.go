package employee

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no active employee matches the lookup.
var ErrNotFound = errors.New("employee not found")

// Repository defines read access to the external employee directory.
// Soft-deleted records are excluded by every lookup.
type Repository interface {
	// GetByEmail retrieves an active employee by exact email match.
	GetByEmail(ctx context.Context, email string) (*Employee, error)

	// GetByID retrieves an active employee by internal ID.
	GetByID(ctx context.Context, id uint) (*Employee, error)

	// GetByFullName retrieves an active employee whose trimmed
	// "first last" name equals the given value.
	GetByFullName(ctx context.Context, fullName string) (*Employee, error)
}

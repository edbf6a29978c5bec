package employee

import (
	"fmt"
	"strings"
	"time"
)

// Employee is a read-only projection of the company employee directory.
// Records are never created or mutated by this service.
type Employee struct {
	id         uint
	firstName  string
	lastName   string
	email      string
	deletedAt  *time.Time
	dbugAccess bool
}

func Reconstruct(
	id uint,
	firstName string,
	lastName string,
	email string,
	deletedAt *time.Time,
	dbugAccess bool,
) (*Employee, error) {
	if id == 0 {
		return nil, fmt.Errorf("employee ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("employee email is required")
	}

	return &Employee{
		id:         id,
		firstName:  firstName,
		lastName:   lastName,
		email:      email,
		deletedAt:  deletedAt,
		dbugAccess: dbugAccess,
	}, nil
}

func (e *Employee) ID() uint {
	return e.id
}

func (e *Employee) FirstName() string {
	return e.firstName
}

func (e *Employee) LastName() string {
	return e.lastName
}

func (e *Employee) Email() string {
	return e.email
}

// FullName joins the trimmed first and last names, matching how
// assignees are referenced in submitted tickets.
func (e *Employee) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(e.firstName) + " " + strings.TrimSpace(e.lastName))
}

func (e *Employee) IsDeleted() bool {
	return e.deletedAt != nil
}

// HasDbugAccess reports whether the per-application access flag is set.
func (e *Employee) HasDbugAccess() bool {
	return e.dbugAccess
}

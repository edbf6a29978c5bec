package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbug/internal/domain/employee"
	"dbug/internal/infrastructure/persistence/models"
)

func TestEmployeeRepository_GetByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	seedEmployee(t, db, &models.EmployeeModel{
		EmpID:        1,
		EmpFirstName: "Jane",
		EmpLastName:  "Doe",
		EmpMailID:    "e@x.com",
		AppDbug:      true,
	})
	seedEmployee(t, db, &models.EmployeeModel{
		EmpID:        2,
		EmpFirstName: "Old",
		EmpLastName:  "Account",
		EmpMailID:    "gone@x.com",
		DeletedTime:  timePtr(time.Now()),
		AppDbug:      true,
	})

	t.Run("active employee", func(t *testing.T) {
		emp, err := repo.GetByEmail(ctx, "e@x.com")
		require.NoError(t, err)
		assert.Equal(t, uint(1), emp.ID())
		assert.Equal(t, "Jane Doe", emp.FullName())
		assert.True(t, emp.HasDbugAccess())
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "nobody@x.com")
		assert.ErrorIs(t, err, employee.ErrNotFound)
	})

	t.Run("soft-deleted employee is invisible", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "gone@x.com")
		assert.ErrorIs(t, err, employee.ErrNotFound)
	})
}

func TestEmployeeRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	seedEmployee(t, db, &models.EmployeeModel{
		EmpID:        7,
		EmpFirstName: "Sam",
		EmpLastName:  "Lee",
		EmpMailID:    "sam@x.com",
	})

	emp, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "sam@x.com", emp.Email())
	assert.False(t, emp.HasDbugAccess())

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, employee.ErrNotFound)
}

func TestEmployeeRepository_GetByFullName(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	seedEmployee(t, db, &models.EmployeeModel{
		EmpID:        3,
		EmpFirstName: " Alex ",
		EmpLastName:  " Kim ",
		EmpMailID:    "alex@x.com",
		AppDbug:      true,
	})

	emp, err := repo.GetByFullName(ctx, "Alex Kim")
	require.NoError(t, err)
	assert.Equal(t, "alex@x.com", emp.Email())

	_, err = repo.GetByFullName(ctx, "No Body")
	assert.ErrorIs(t, err, employee.ErrNotFound)
}

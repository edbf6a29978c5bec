package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"dbug/internal/domain/employee"
	"dbug/internal/infrastructure/persistence/mappers"
	"dbug/internal/infrastructure/persistence/models"
)

// EmployeeRepository reads the externally-owned employee directory.
// Every lookup excludes soft-deleted rows.
type EmployeeRepository struct {
	db     *gorm.DB
	mapper mappers.EmployeeMapper
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{
		db:     db,
		mapper: mappers.NewEmployeeMapper(),
	}
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	var model models.EmployeeModel
	err := r.db.WithContext(ctx).
		Where("emp_mail_id = ? AND deleted_time IS NULL", email).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id uint) (*employee.Employee, error) {
	var model models.EmployeeModel
	err := r.db.WithContext(ctx).
		Where("emp_id = ? AND deleted_time IS NULL", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by id: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EmployeeRepository) GetByFullName(ctx context.Context, fullName string) (*employee.Employee, error) {
	var model models.EmployeeModel
	err := r.db.WithContext(ctx).
		Where("CONCAT(TRIM(emp_first_name), ' ', TRIM(emp_last_name)) = ? AND deleted_time IS NULL", fullName).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by name: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

package usecases

import (
	"context"
	stderrors "errors"

	"dbug/internal/domain/employee"
	"dbug/internal/shared/errors"
	"dbug/internal/shared/logger"
)

type LookupEmployeeQuery struct {
	Email string
}

type LookupEmployeeResult struct {
	EmployeeID uint   `json:"emp_id"`
	FirstName  string `json:"emp_first_name"`
	LastName   string `json:"emp_last_name"`
	Email      string `json:"emp_mail_id"`
	FullName   string `json:"full_name"`
}

type LookupEmployeeUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewLookupEmployeeUseCase(
	employeeRepo employee.Repository,
	logger logger.Interface,
) *LookupEmployeeUseCase {
	return &LookupEmployeeUseCase{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (uc *LookupEmployeeUseCase) Execute(ctx context.Context, query LookupEmployeeQuery) (*LookupEmployeeResult, error) {
	if len(query.Email) == 0 {
		return nil, errors.NewValidationError("Email required")
	}

	emp, err := uc.employeeRepo.GetByEmail(ctx, query.Email)
	if err != nil {
		if stderrors.Is(err, employee.ErrNotFound) {
			uc.logger.Warnw("employee not found", "email", query.Email)
			return nil, errors.NewNotFoundError("Employee not found")
		}
		uc.logger.Errorw("failed to look up employee", "error", err)
		return nil, errors.NewInternalError("Database error")
	}

	if !emp.HasDbugAccess() {
		uc.logger.Warnw("employee lacks dbug access", "email", query.Email)
		return nil, errors.NewAccessDeniedError("Access denied. You don't have access for dbug.")
	}

	return &LookupEmployeeResult{
		EmployeeID: emp.ID(),
		FirstName:  emp.FirstName(),
		LastName:   emp.LastName(),
		Email:      emp.Email(),
		FullName:   emp.FullName(),
	}, nil
}

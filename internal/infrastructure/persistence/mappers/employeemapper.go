package mappers

import (
	"dbug/internal/domain/employee"
	"dbug/internal/infrastructure/persistence/models"
)

// EmployeeMapper converts employee directory rows to domain entities.
// There is no ToModel direction; the table is read-only here.
type EmployeeMapper interface {
	ToDomain(model *models.EmployeeModel) (*employee.Employee, error)
}

type EmployeeMapperImpl struct{}

func NewEmployeeMapper() EmployeeMapper {
	return &EmployeeMapperImpl{}
}

func (m *EmployeeMapperImpl) ToDomain(model *models.EmployeeModel) (*employee.Employee, error) {
	return employee.Reconstruct(
		model.EmpID,
		model.EmpFirstName,
		model.EmpLastName,
		model.EmpMailID,
		model.DeletedTime,
		model.AppDbug,
	)
}

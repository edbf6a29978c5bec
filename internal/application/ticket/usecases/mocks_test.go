package usecases

import (
	"context"

	"dbug/internal/domain/employee"
	"dbug/internal/domain/ticket"
	"dbug/internal/shared/logger"
)

type mockTicketRepository struct {
	createFunc      func(ctx context.Context, t *ticket.Ticket) error
	getByNumberFunc func(ctx context.Context, number string) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	return m.createFunc(ctx, t)
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	return m.getByNumberFunc(ctx, number)
}

type mockEmployeeRepository struct {
	getByEmailFunc    func(ctx context.Context, email string) (*employee.Employee, error)
	getByIDFunc       func(ctx context.Context, id uint) (*employee.Employee, error)
	getByFullNameFunc func(ctx context.Context, fullName string) (*employee.Employee, error)
}

func (m *mockEmployeeRepository) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return m.getByEmailFunc(ctx, email)
}

func (m *mockEmployeeRepository) GetByID(ctx context.Context, id uint) (*employee.Employee, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockEmployeeRepository) GetByFullName(ctx context.Context, fullName string) (*employee.Employee, error) {
	return m.getByFullNameFunc(ctx, fullName)
}

type mockEmailService struct {
	sendSubmitterConfirmationFunc func(to string, ticket TicketNotification) error
	sendAssigneeNotificationFunc  func(to string, ticket TicketNotification) error
}

func (m *mockEmailService) SendSubmitterConfirmation(to string, ticket TicketNotification) error {
	return m.sendSubmitterConfirmationFunc(to, ticket)
}

func (m *mockEmailService) SendAssigneeNotification(to string, ticket TicketNotification) error {
	return m.sendAssigneeNotificationFunc(to, ticket)
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...interface{}) logger.Interface       { return m }

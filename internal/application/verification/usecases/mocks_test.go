package usecases

import (
	"context"

	"dbug/internal/domain/employee"
	"dbug/internal/domain/verification"
	"dbug/internal/shared/logger"
)

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

type mockOTPRepository struct {
	upsertFunc     func(ctx context.Context, otp *verification.OTP) error
	getByEmailFunc func(ctx context.Context, email string) (*verification.OTP, error)
}

func (m *mockOTPRepository) Upsert(ctx context.Context, otp *verification.OTP) error {
	return m.upsertFunc(ctx, otp)
}

func (m *mockOTPRepository) GetByEmail(ctx context.Context, email string) (*verification.OTP, error) {
	return m.getByEmailFunc(ctx, email)
}

type mockCodeGenerator struct {
	generateFunc func() (string, error)
}

func (m *mockCodeGenerator) Generate() (string, error) {
	return m.generateFunc()
}

type mockEmailService struct {
	sendOTPEmailFunc func(to, code string) error
}

func (m *mockEmailService) SendOTPEmail(to, code string) error {
	return m.sendOTPEmailFunc(to, code)
}

type mockTokenIssuer struct {
	generateFunc func(email string) (string, error)
}

func (m *mockTokenIssuer) Generate(email string) (string, error) {
	return m.generateFunc(email)
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...interface{}) logger.Interface       { return m }

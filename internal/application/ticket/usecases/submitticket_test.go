package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbug/internal/domain/employee"
	"dbug/internal/domain/ticket"
	"dbug/internal/shared/errors"
)

const (
	submitterEmail = "jane.doe@dolluzcorp.in"
	assigneeEmail  = "raj.kumar@dolluzcorp.in"
)

func testEmployee(t *testing.T, id uint, first, last, email string) *employee.Employee {
	t.Helper()
	emp, err := employee.Reconstruct(id, first, last, email, nil, true)
	require.NoError(t, err)
	return emp
}

func persistingCreate(number string) func(ctx context.Context, tk *ticket.Ticket) error {
	return func(ctx context.Context, tk *ticket.Ticket) error {
		if err := tk.SetID(42); err != nil {
			return err
		}
		return tk.SetNumber(number)
	}
}

func validCommand() SubmitTicketCommand {
	return SubmitTicketCommand{
		VerifiedEmail: submitterEmail,
		EmployeeID:    7,
		IssueType:     "bug",
		Summary:       "Checkout button unresponsive on Safari",
		Description:   "<p>" + strings.Repeat("Steps to reproduce the defect. ", 12) + "</p>",
		Assignee:      "Raj Kumar",
		Priority:      "High",
		ReportingTeam: "QA",
		TestingType:   "Regression",
		DevicesTested: []string{"iPhone 15", "Pixel 8"},
		Attachments:   []string{"tickets_file_uploads/1725000000000-screenshot.png"},
	}
}

func newSubmitUseCase(
	ticketRepo *mockTicketRepository,
	employeeRepo *mockEmployeeRepository,
	emailService *mockEmailService,
) *SubmitTicketUseCase {
	return NewSubmitTicketUseCase(ticketRepo, employeeRepo, emailService, 300, 5000, &mockLogger{})
}

func TestSubmitTicketUseCase_Execute(t *testing.T) {
	submitter := func(ctx context.Context, id uint) (*employee.Employee, error) {
		return testEmployee(t, 7, "Jane", "Doe", submitterEmail), nil
	}
	assignee := func(ctx context.Context, name string) (*employee.Employee, error) {
		return testEmployee(t, 9, "Raj", "Kumar", assigneeEmail), nil
	}
	deliver := func(to string, n TicketNotification) error { return nil }

	t.Run("persists and notifies", func(t *testing.T) {
		var confirmedTo, notifiedTo string
		uc := newSubmitUseCase(
			&mockTicketRepository{createFunc: persistingCreate("DZDXT-42")},
			&mockEmployeeRepository{getByIDFunc: submitter, getByFullNameFunc: assignee},
			&mockEmailService{
				sendSubmitterConfirmationFunc: func(to string, n TicketNotification) error {
					confirmedTo = to
					assert.Equal(t, "DZDXT-42", n.Number)
					assert.Equal(t, "Bug", n.IssueWord)
					assert.Equal(t, "Jane Doe", n.SubmitterName)
					return nil
				},
				sendAssigneeNotificationFunc: func(to string, n TicketNotification) error {
					notifiedTo = to
					return nil
				},
			},
		)

		result, err := uc.Execute(context.Background(), validCommand())
		require.NoError(t, err)

		assert.Equal(t, "DZDXT-42", result.TicketNumber)
		assert.Equal(t, "Bug", result.IssueWord)
		assert.Equal(t, "Jane Doe", result.EmployeeName)
		assert.Equal(t, submitterEmail, confirmedTo)
		assert.Equal(t, assigneeEmail, notifiedTo)
		assert.Equal(t, NotificationReport{
			SubmitterEmailSent: true,
			AssigneeResolved:   true,
			AssigneeEmailSent:  true,
		}, result.Notifications)
	})

	t.Run("idea issue type uses idea wording", func(t *testing.T) {
		uc := newSubmitUseCase(
			&mockTicketRepository{createFunc: persistingCreate("DZDXT-43")},
			&mockEmployeeRepository{getByIDFunc: submitter, getByFullNameFunc: assignee},
			&mockEmailService{sendSubmitterConfirmationFunc: deliver, sendAssigneeNotificationFunc: deliver},
		)

		cmd := validCommand()
		cmd.IssueType = "idea"
		result, err := uc.Execute(context.Background(), cmd)
		require.NoError(t, err)
		assert.Equal(t, "Idea", result.IssueWord)
	})

	t.Run("verified email must match submitter", func(t *testing.T) {
		uc := newSubmitUseCase(
			&mockTicketRepository{},
			&mockEmployeeRepository{getByIDFunc: submitter},
			&mockEmailService{},
		)

		cmd := validCommand()
		cmd.VerifiedEmail = "someone.else@dolluzcorp.in"
		_, err := uc.Execute(context.Background(), cmd)

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeAccessDenied, appErr.Type)
	})

	t.Run("unknown employee id", func(t *testing.T) {
		uc := newSubmitUseCase(
			&mockTicketRepository{},
			&mockEmployeeRepository{getByIDFunc: func(ctx context.Context, id uint) (*employee.Employee, error) {
				return nil, employee.ErrNotFound
			}},
			&mockEmailService{},
		)

		_, err := uc.Execute(context.Background(), validCommand())

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeInvalidEmployee, appErr.Type)
	})

	t.Run("persist failure aborts before any email", func(t *testing.T) {
		emailed := false
		uc := newSubmitUseCase(
			&mockTicketRepository{createFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				return assert.AnError
			}},
			&mockEmployeeRepository{getByIDFunc: submitter},
			&mockEmailService{
				sendSubmitterConfirmationFunc: func(to string, n TicketNotification) error {
					emailed = true
					return nil
				},
			},
		)

		_, err := uc.Execute(context.Background(), validCommand())

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
		assert.False(t, emailed)
	})

	t.Run("email failures do not fail the submission", func(t *testing.T) {
		uc := newSubmitUseCase(
			&mockTicketRepository{createFunc: persistingCreate("DZDXT-44")},
			&mockEmployeeRepository{getByIDFunc: submitter, getByFullNameFunc: assignee},
			&mockEmailService{
				sendSubmitterConfirmationFunc: func(to string, n TicketNotification) error { return assert.AnError },
				sendAssigneeNotificationFunc:  func(to string, n TicketNotification) error { return assert.AnError },
			},
		)

		result, err := uc.Execute(context.Background(), validCommand())
		require.NoError(t, err)
		assert.Equal(t, NotificationReport{
			SubmitterEmailSent: false,
			AssigneeResolved:   true,
			AssigneeEmailSent:  false,
		}, result.Notifications)
	})

	t.Run("unresolvable assignee skips the assignee email", func(t *testing.T) {
		notified := false
		uc := newSubmitUseCase(
			&mockTicketRepository{createFunc: persistingCreate("DZDXT-45")},
			&mockEmployeeRepository{
				getByIDFunc: submitter,
				getByFullNameFunc: func(ctx context.Context, name string) (*employee.Employee, error) {
					return nil, employee.ErrNotFound
				},
			},
			&mockEmailService{
				sendSubmitterConfirmationFunc: deliver,
				sendAssigneeNotificationFunc: func(to string, n TicketNotification) error {
					notified = true
					return nil
				},
			},
		)

		result, err := uc.Execute(context.Background(), validCommand())
		require.NoError(t, err)
		assert.False(t, notified)
		assert.Equal(t, NotificationReport{SubmitterEmailSent: true}, result.Notifications)
	})
}

func TestSubmitTicketUseCase_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cmd *SubmitTicketCommand)
	}{
		{"missing issue type", func(cmd *SubmitTicketCommand) { cmd.IssueType = "" }},
		{"unknown issue type", func(cmd *SubmitTicketCommand) { cmd.IssueType = "task" }},
		{"missing summary", func(cmd *SubmitTicketCommand) { cmd.Summary = "" }},
		{"summary too long", func(cmd *SubmitTicketCommand) { cmd.Summary = strings.Repeat("x", 256) }},
		{"missing assignee", func(cmd *SubmitTicketCommand) { cmd.Assignee = "" }},
		{"unknown priority", func(cmd *SubmitTicketCommand) { cmd.Priority = "Urgent" }},
		{"description too short", func(cmd *SubmitTicketCommand) { cmd.Description = "<p>too short</p>" }},
		{"description too long", func(cmd *SubmitTicketCommand) {
			cmd.Description = strings.Repeat("y", 5001)
		}},
		{"markup does not count toward length", func(cmd *SubmitTicketCommand) {
			cmd.Description = "<p><strong>" + strings.Repeat("<em>a</em>", 200) + "</strong></p>"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newSubmitUseCase(&mockTicketRepository{}, &mockEmployeeRepository{}, &mockEmailService{})

			cmd := validCommand()
			tt.mutate(&cmd)
			_, err := uc.Execute(context.Background(), cmd)

			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
		})
	}
}

package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"html"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"dbug/internal/domain/employee"
	"dbug/internal/domain/ticket"
	vo "dbug/internal/domain/ticket/valueobjects"
	"dbug/internal/shared/errors"
	"dbug/internal/shared/logger"
)

type SubmitTicketCommand struct {
	VerifiedEmail string   `validate:"required,email"`
	EmployeeID    uint     `validate:"required"`
	IssueType     string   `validate:"required"`
	Summary       string   `validate:"required,max=255"`
	Description   string   `validate:"required"`
	Assignee      string   `validate:"required"`
	Priority      string   `validate:"omitempty"`
	ReportingTeam string   `validate:"omitempty,max=255"`
	TestingType   string   `validate:"omitempty,max=255"`
	DevicesTested []string `validate:"omitempty,dive,max=255"`
	Attachments   []string `validate:"omitempty,dive,required"`
}

// NotificationReport tells the caller which post-submit emails went
// out. The ticket itself is already persisted whatever these say.
type NotificationReport struct {
	SubmitterEmailSent bool `json:"submitter_email_sent"`
	AssigneeResolved   bool `json:"assignee_resolved"`
	AssigneeEmailSent  bool `json:"assignee_email_sent"`
}

type SubmitTicketResult struct {
	TicketNumber  string             `json:"ticket_id"`
	IssueWord     string             `json:"issue_word"`
	EmployeeName  string             `json:"employee_name"`
	Notifications NotificationReport `json:"notifications"`
}

type SubmitTicketUseCase struct {
	ticketRepo   ticket.Repository
	employeeRepo employee.Repository
	emailService EmailService
	validator    *validator.Validate
	sanitizer    *bluemonday.Policy
	descMinLen   int
	descMaxLen   int
	logger       logger.Interface
}

func NewSubmitTicketUseCase(
	ticketRepo ticket.Repository,
	employeeRepo employee.Repository,
	emailService EmailService,
	descMinLen int,
	descMaxLen int,
	logger logger.Interface,
) *SubmitTicketUseCase {
	return &SubmitTicketUseCase{
		ticketRepo:   ticketRepo,
		employeeRepo: employeeRepo,
		emailService: emailService,
		validator:    validator.New(),
		sanitizer:    bluemonday.StrictPolicy(),
		descMinLen:   descMinLen,
		descMaxLen:   descMaxLen,
		logger:       logger,
	}
}

// Execute persists the ticket and then attempts the two notification
// emails. Persistence failures abort the submission; email failures do
// not, they only show up in the notification report.
func (uc *SubmitTicketUseCase) Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	issueType, err := vo.NewIssueType(cmd.IssueType)
	if err != nil {
		return nil, errors.NewValidationError("Issue type must be bug or idea")
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError("Priority must be High, Medium or Low")
	}

	plainDescription := uc.plainDescription(cmd.Description)
	if n := len(plainDescription); n < uc.descMinLen || n > uc.descMaxLen {
		return nil, errors.NewValidationError(fmt.Sprintf(
			"Description must be between %d and %d characters", uc.descMinLen, uc.descMaxLen))
	}

	submitter, err := uc.employeeRepo.GetByID(ctx, cmd.EmployeeID)
	if err != nil {
		if stderrors.Is(err, employee.ErrNotFound) {
			return nil, errors.NewInvalidEmployeeError("Invalid employee")
		}
		uc.logger.Errorw("failed to load submitting employee", "error", err)
		return nil, errors.NewInternalError("Database error")
	}

	if !strings.EqualFold(submitter.Email(), cmd.VerifiedEmail) {
		uc.logger.Warnw("verification token does not match submitter",
			"verified_email", cmd.VerifiedEmail, "employee_id", cmd.EmployeeID)
		return nil, errors.NewAccessDeniedError("Verification does not match this employee")
	}

	t, err := ticket.NewTicket(issueType, cmd.Summary, cmd.Description, cmd.Assignee, submitter.ID())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	t.SetAttachments(cmd.Attachments)
	t.SetReportingTeam(cmd.ReportingTeam)
	t.SetTestingType(cmd.TestingType)
	t.SetDevicesTested(cmd.DevicesTested)
	if err := t.SetPriority(priority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist ticket", "error", err)
		return nil, errors.NewInternalError("Failed to save ticket")
	}

	uc.logger.Infow("ticket created",
		"ticket_number", t.Number(), "employee_id", submitter.ID(), "issue_type", issueType.String())

	notification := TicketNotification{
		Number:        t.Number(),
		IssueWord:     issueType.Word(),
		Summary:       t.Summary(),
		SubmitterName: submitter.FullName(),
		AssigneeName:  t.Assignee(),
	}

	return &SubmitTicketResult{
		TicketNumber:  t.Number(),
		IssueWord:     issueType.Word(),
		EmployeeName:  submitter.FullName(),
		Notifications: uc.notify(ctx, submitter, notification),
	}, nil
}

// notify sends the confirmation and assignee emails, swallowing
// delivery errors into the report.
func (uc *SubmitTicketUseCase) notify(ctx context.Context, submitter *employee.Employee, n TicketNotification) NotificationReport {
	var report NotificationReport

	if err := uc.emailService.SendSubmitterConfirmation(submitter.Email(), n); err != nil {
		uc.logger.Errorw("failed to send submitter confirmation",
			"error", err, "ticket_number", n.Number)
	} else {
		report.SubmitterEmailSent = true
	}

	assignee, err := uc.employeeRepo.GetByFullName(ctx, n.AssigneeName)
	if err != nil {
		if !stderrors.Is(err, employee.ErrNotFound) {
			uc.logger.Errorw("failed to resolve assignee", "error", err, "assignee", n.AssigneeName)
		}
		return report
	}
	report.AssigneeResolved = true

	if err := uc.emailService.SendAssigneeNotification(assignee.Email(), n); err != nil {
		uc.logger.Errorw("failed to send assignee notification",
			"error", err, "ticket_number", n.Number)
	} else {
		report.AssigneeEmailSent = true
	}

	return report
}

func (uc *SubmitTicketUseCase) validateCommand(cmd SubmitTicketCommand) error {
	if err := uc.validator.Struct(cmd); err != nil {
		var verrs validator.ValidationErrors
		if stderrors.As(err, &verrs) && len(verrs) > 0 {
			field := verrs[0]
			return errors.NewValidationError(fmt.Sprintf(
				"Field %s failed validation on %s", field.Field(), field.Tag()))
		}
		return errors.NewValidationError("Invalid submission")
	}
	return nil
}

// plainDescription reduces rich-text markup to the text an employee
// actually typed, so length limits measure content rather than tags.
func (uc *SubmitTicketUseCase) plainDescription(description string) string {
	plain := uc.sanitizer.Sanitize(description)
	return strings.TrimSpace(html.UnescapeString(plain))
}

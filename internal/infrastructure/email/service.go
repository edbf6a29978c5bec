package email

import (
	ticketusecases "dbug/internal/application/ticket/usecases"
)

// Service delivers the three transactional emails this system sends.
// A failed delivery returns an error; there is no retry.
type Service interface {
	// SendOTPEmail delivers a verification code to an employee.
	SendOTPEmail(to, code string) error

	// SendSubmitterConfirmation confirms a submitted ticket to its creator.
	SendSubmitterConfirmation(to string, ticket ticketusecases.TicketNotification) error

	// SendAssigneeNotification tells the assignee a ticket landed on them.
	SendAssigneeNotification(to string, ticket ticketusecases.TicketNotification) error
}

package usecases

import "context"

type SubmitTicketExecutor interface {
	Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error)
}

// TicketNotification carries the fields the post-submit emails render.
type TicketNotification struct {
	Number        string
	IssueWord     string
	Summary       string
	SubmitterName string
	AssigneeName  string
}

// EmailService delivers the notifications that follow a successful
// submission. Delivery failures are reported, never retried.
type EmailService interface {
	SendSubmitterConfirmation(to string, ticket TicketNotification) error
	SendAssigneeNotification(to string, ticket TicketNotification) error
}

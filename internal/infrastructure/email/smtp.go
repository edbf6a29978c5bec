package email

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	ticketusecases "dbug/internal/application/ticket/usecases"
)

type SMTPConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	FromAddress  string
	FromName     string
	SupportEmail string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendOTPEmail(to, code string) error {
	subject := "dbug - Verify Your Email Address"
	htmlBody := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 15px; border: 1px solid #ddd; border-radius: 8px;">
			<h2 style="color: #4A90E2;">dbug - Email Verification</h2>
			<p>Hello,</p>
			<p>We received a request to verify your email for accessing <strong>dbug</strong>.</p>
			<p>Please use the OTP below to complete your verification:</p>
			<h3 style="color: #333; font-size: 24px;">%s</h3>
			<p>This OTP is valid for <strong>5 minutes</strong>. Do not share it with anyone.</p>
			<p>If you did not request this verification, please ignore this message.</p>
			<br/>
			<p style="color: #888;">- The dbug Team</p>
		</div>
	`, code)

	plainBody := fmt.Sprintf(`
dbug - Email Verification

Your verification code is: %s

This OTP is valid for 5 minutes. Do not share it with anyone.
If you did not request this verification, please ignore this message.
	`, code)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendSubmitterConfirmation(to string, ticket ticketusecases.TicketNotification) error {
	subject := fmt.Sprintf("[%s ID: %s] Update on your %s", s.idWord(ticket), ticket.Number, ticket.IssueWord)

	htmlBody := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 15px; border: 1px solid #ddd; border-radius: 8px;">
			<h2 style="color: #4A90E2;">%s Submission Confirmation</h2>
			<p>Hello <strong>%s</strong>,</p>
			<p>Your %s <strong>%s</strong> regarding "<em>%s</em>" has been <strong>Submitted</strong>.</p>
			<p><strong>Current Status:</strong> Submitted</p>
			<br/>
			<p>For any concerns, amendments, or notes, please write to
			<a href="mailto:%s">%s</a> with the %s ID in the subject line.</p>
			<br/>
			<p style="color: #888;">— The dbug Team</p>
		</div>
	`, ticket.IssueWord, ticket.SubmitterName, lower(ticket.IssueWord), ticket.Number,
		ticket.Summary, s.config.SupportEmail, s.config.SupportEmail, ticket.IssueWord)

	plainBody := fmt.Sprintf(`
%s Submission Confirmation

Hello %s,

Your %s %s regarding "%s" has been Submitted.
Current Status: Submitted

For any concerns, amendments, or notes, please write to %s with the %s ID in the subject line.
	`, ticket.IssueWord, ticket.SubmitterName, lower(ticket.IssueWord), ticket.Number,
		ticket.Summary, s.config.SupportEmail, ticket.IssueWord)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendAssigneeNotification(to string, ticket ticketusecases.TicketNotification) error {
	subject := fmt.Sprintf("[%s ID: %s] %s Notification", s.idWord(ticket), ticket.Number, ticket.IssueWord)

	htmlBody := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 15px; border: 1px solid #ddd; border-radius: 8px;">
			<h2 style="color: #4A90E2;">New %s Assigned</h2>
			<p>Hello <strong>%s</strong>,</p>
			<p>You have been assigned a new %s <strong>%s</strong> submitted by <strong>%s</strong>.</p>
			<p><strong>Summary:</strong> %s</p>
			<p><strong>Status:</strong> Submitted</p>
			<br/>
			<p>Please review the details and take necessary action.</p>
			<br/>
			<p style="color: #888;">— The dbug Team</p>
		</div>
	`, ticket.IssueWord, ticket.AssigneeName, lower(ticket.IssueWord), ticket.Number,
		ticket.SubmitterName, ticket.Summary)

	plainBody := fmt.Sprintf(`
New %s Assigned

Hello %s,

You have been assigned a new %s %s submitted by %s.
Summary: %s
Status: Submitted

Please review the details and take necessary action.
	`, ticket.IssueWord, ticket.AssigneeName, lower(ticket.IssueWord), ticket.Number,
		ticket.SubmitterName, ticket.Summary)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// idWord mirrors the subject-line convention: bugs are labelled
// "Defect ID", ideas "Idea ID".
func (s *SMTPEmailService) idWord(ticket ticketusecases.TicketNotification) string {
	if ticket.IssueWord == "Bug" {
		return "Defect"
	}
	return ticket.IssueWord
}

func lower(s string) string {
	return strings.ToLower(s)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

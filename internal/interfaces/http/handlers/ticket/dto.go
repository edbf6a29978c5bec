package ticket

import (
	"encoding/json"

	"dbug/internal/application/ticket/usecases"
)

// SubmitTicketRequest maps the multipart form fields of a submission.
// Attachments arrive as file parts and are handled separately.
type SubmitTicketRequest struct {
	EmployeeID    uint   `form:"emp_id" binding:"required"`
	IssueType     string `form:"issue_type" binding:"required"`
	Summary       string `form:"summary" binding:"required,max=255"`
	Description   string `form:"description" binding:"required"`
	Assignee      string `form:"assignee" binding:"required"`
	Priority      string `form:"priority"`
	ReportingTeam string `form:"reporting_team"`
	TestingType   string `form:"testing_type"`
	DevicesTested string `form:"devices_tested"`
}

func (r *SubmitTicketRequest) ToCommand(verifiedEmail string, attachments []string) usecases.SubmitTicketCommand {
	return usecases.SubmitTicketCommand{
		VerifiedEmail: verifiedEmail,
		EmployeeID:    r.EmployeeID,
		IssueType:     r.IssueType,
		Summary:       r.Summary,
		Description:   r.Description,
		Assignee:      r.Assignee,
		Priority:      r.Priority,
		ReportingTeam: r.ReportingTeam,
		TestingType:   r.TestingType,
		DevicesTested: r.Devices(),
		Attachments:   attachments,
	}
}

// Devices decodes the devices_tested field, which clients send as a
// JSON array string. A bare value is treated as a single device.
func (r *SubmitTicketRequest) Devices() []string {
	if r.DevicesTested == "" {
		return nil
	}
	var devices []string
	if err := json.Unmarshal([]byte(r.DevicesTested), &devices); err != nil {
		return []string{r.DevicesTested}
	}
	return devices
}

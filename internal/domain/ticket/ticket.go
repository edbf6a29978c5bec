package ticket

import (
	"fmt"
	"time"

	vo "dbug/internal/domain/ticket/valueobjects"
)

// PlaceholderNumber is stored in the display-identifier column between
// the insert and the update that patches in the derived identifier.
const PlaceholderNumber = "TEMP"

// Ticket is a submitted bug report or idea. The display number is
// derived from the storage-assigned ID and is only known after insert.
type Ticket struct {
	id            uint
	number        string
	issueType     vo.IssueType
	summary       string
	description   string
	attachments   []string
	assignee      string
	priority      vo.Priority
	reportingTeam string
	testingType   string
	devicesTested []string
	creatorID     uint
	createdAt     time.Time
}

func NewTicket(
	issueType vo.IssueType,
	summary string,
	description string,
	assignee string,
	creatorID uint,
) (*Ticket, error) {
	if !issueType.IsValid() {
		return nil, fmt.Errorf("invalid issue type")
	}
	if len(summary) == 0 {
		return nil, fmt.Errorf("summary is required")
	}
	if len(summary) > 255 {
		return nil, fmt.Errorf("summary exceeds maximum length of 255 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(assignee) == 0 {
		return nil, fmt.Errorf("assignee is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Ticket{
		number:      PlaceholderNumber,
		issueType:   issueType,
		summary:     summary,
		description: description,
		assignee:    assignee,
		creatorID:   creatorID,
		createdAt:   time.Now(),
	}, nil
}

func Reconstruct(
	id uint,
	number string,
	issueType vo.IssueType,
	summary string,
	description string,
	attachments []string,
	assignee string,
	priority vo.Priority,
	reportingTeam string,
	testingType string,
	devicesTested []string,
	creatorID uint,
	createdAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !issueType.IsValid() {
		return nil, fmt.Errorf("invalid issue type")
	}

	if attachments == nil {
		attachments = []string{}
	}
	if devicesTested == nil {
		devicesTested = []string{}
	}

	return &Ticket{
		id:            id,
		number:        number,
		issueType:     issueType,
		summary:       summary,
		description:   description,
		attachments:   attachments,
		assignee:      assignee,
		priority:      priority,
		reportingTeam: reportingTeam,
		testingType:   testingType,
		devicesTested: devicesTested,
		creatorID:     creatorID,
		createdAt:     createdAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Number() string {
	return t.number
}

func (t *Ticket) IssueType() vo.IssueType {
	return t.issueType
}

func (t *Ticket) Summary() string {
	return t.summary
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Attachments() []string {
	attachmentsCopy := make([]string, len(t.attachments))
	copy(attachmentsCopy, t.attachments)
	return attachmentsCopy
}

func (t *Ticket) Assignee() string {
	return t.assignee
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) ReportingTeam() string {
	return t.reportingTeam
}

func (t *Ticket) TestingType() string {
	return t.testingType
}

func (t *Ticket) DevicesTested() []string {
	devicesCopy := make([]string, len(t.devicesTested))
	copy(devicesCopy, t.devicesTested)
	return devicesCopy
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if t.number != PlaceholderNumber && len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

func (t *Ticket) SetAttachments(paths []string) {
	attachmentsCopy := make([]string, len(paths))
	copy(attachmentsCopy, paths)
	t.attachments = attachmentsCopy
}

func (t *Ticket) SetPriority(priority vo.Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	t.priority = priority
	return nil
}

func (t *Ticket) SetReportingTeam(team string) {
	t.reportingTeam = team
}

func (t *Ticket) SetTestingType(testingType string) {
	t.testingType = testingType
}

func (t *Ticket) SetDevicesTested(devices []string) {
	devicesCopy := make([]string, len(devices))
	copy(devicesCopy, devices)
	t.devicesTested = devicesCopy
}

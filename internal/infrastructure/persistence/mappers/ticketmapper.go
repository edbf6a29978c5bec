package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"dbug/internal/domain/ticket"
	vo "dbug/internal/domain/ticket/valueobjects"
	"dbug/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities
// and persistence models. List-valued fields are serialized into JSON
// columns.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		AutoID:        t.ID(),
		TicketID:      t.Number(),
		EmpID:         t.CreatorID(),
		IssueType:     t.IssueType().String(),
		Summary:       t.Summary(),
		Description:   t.Description(),
		Assignee:      t.Assignee(),
		PriorityLevel: t.Priority().String(),
		ReportingTeam: t.ReportingTeam(),
		TestingType:   t.TestingType(),
		CreatedBy:     t.CreatorID(),
	}

	if !t.CreatedAt().IsZero() {
		model.CreatedAt = t.CreatedAt().UnixMilli()
	}

	if len(t.Attachments()) > 0 {
		attachmentsJSON, _ := json.Marshal(t.Attachments())
		model.AttachmentFiles = datatypes.JSON(attachmentsJSON)
	}

	if len(t.DevicesTested()) > 0 {
		devicesJSON, _ := json.Marshal(t.DevicesTested())
		model.DevicesTested = datatypes.JSON(devicesJSON)
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	issueType, err := vo.NewIssueType(model.IssueType)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket %d: %w", model.AutoID, err)
	}

	priority, err := vo.NewPriority(model.PriorityLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket %d: %w", model.AutoID, err)
	}

	var attachments []string
	if len(model.AttachmentFiles) > 0 {
		if err := json.Unmarshal(model.AttachmentFiles, &attachments); err != nil {
			return nil, fmt.Errorf("failed to decode attachments for ticket %d: %w", model.AutoID, err)
		}
	}

	var devices []string
	if len(model.DevicesTested) > 0 {
		if err := json.Unmarshal(model.DevicesTested, &devices); err != nil {
			return nil, fmt.Errorf("failed to decode devices for ticket %d: %w", model.AutoID, err)
		}
	}

	return ticket.Reconstruct(
		model.AutoID,
		model.TicketID,
		issueType,
		model.Summary,
		model.Description,
		attachments,
		model.Assignee,
		priority,
		model.ReportingTeam,
		model.TestingType,
		devices,
		model.EmpID,
		time.UnixMilli(model.CreatedAt),
	)
}

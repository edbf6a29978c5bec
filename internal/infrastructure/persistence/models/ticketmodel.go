package models

import "gorm.io/datatypes"

type TicketModel struct {
	AutoID          uint           `gorm:"column:auto_id;primaryKey"`
	TicketID        string         `gorm:"column:ticket_id;size:50;not null;index"`
	EmpID           uint           `gorm:"column:emp_id;not null;index"`
	IssueType       string         `gorm:"column:issue_type;size:20;not null"`
	Summary         string         `gorm:"column:summary;size:255;not null"`
	Description     string         `gorm:"column:description;type:text;not null"`
	AttachmentFiles datatypes.JSON `gorm:"column:attachment_files"`
	Assignee        string         `gorm:"column:assignee;size:200;not null"`
	PriorityLevel   string         `gorm:"column:priority_level;size:20"`
	ReportingTeam   string         `gorm:"column:reporting_team;size:100"`
	TestingType     string         `gorm:"column:testing_type;size:100"`
	DevicesTested   datatypes.JSON `gorm:"column:devices_tested"`
	CreatedBy       uint           `gorm:"column:created_by;not null"`
	CreatedAt       int64          `gorm:"column:created_at;autoCreateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "tickets_entry"
}

package models

import "time"

// EmployeeModel maps the externally-owned employee directory table.
// This service only ever reads it.
type EmployeeModel struct {
	EmpID        uint       `gorm:"column:emp_id;primaryKey"`
	EmpFirstName string     `gorm:"column:emp_first_name;size:100"`
	EmpLastName  string     `gorm:"column:emp_last_name;size:100"`
	EmpMailID    string     `gorm:"column:emp_mail_id;size:255;uniqueIndex"`
	DeletedTime  *time.Time `gorm:"column:deleted_time"`
	AppDbug      bool       `gorm:"column:app_dbug;not null;default:false"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}

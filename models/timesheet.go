package models

import "time"

type EntryStatus string

const (
	EntryStatusDraft     EntryStatus = "DRAFT"
	EntryStatusSubmitted EntryStatus = "SUBMITTED"
	EntryStatusApproved  EntryStatus = "APPROVED"
	EntryStatusRejected  EntryStatus = "REJECTED"
)

type TimesheetEntry struct {
	ID              uint        `gorm:"primaryKey;column:id" json:"id"`
	UserID          uint        `gorm:"not null;index;column:user_id" json:"user_id"`
	ProjectID       *uint       `gorm:"column:project_id" json:"project_id"`
	TaskID          *uint       `gorm:"column:task_id" json:"task_id"`
	WorkDate        time.Time   `gorm:"not null;type:date;index;column:work_date" json:"work_date"`
	HoursWorked     float64     `gorm:"not null;column:hours_worked" json:"hours_worked"`
	Description     string      `gorm:"type:text" json:"description"`
	IsBillable      bool        `gorm:"default:false;column:is_billable" json:"is_billable"`
	BillingAmount   *float64    `gorm:"column:billing_amount" json:"billing_amount"`
	Status          EntryStatus `gorm:"default:'DRAFT';type:varchar(20);index;column:status" json:"status"`
	SubmittedAt     *time.Time  `gorm:"column:submitted_at" json:"submitted_at"`
	ApprovedAt      *time.Time  `gorm:"column:approved_at" json:"approved_at"`
	ApprovedBy      *uint       `gorm:"column:approved_by" json:"approved_by"`
	RejectedAt      *time.Time  `gorm:"column:rejected_at" json:"rejected_at"`
	RejectedBy      *uint       `gorm:"column:rejected_by" json:"rejected_by"`
	RejectionReason *string     `gorm:"type:text;column:rejection_reason" json:"rejection_reason"`
	IsAutoApproved  bool        `gorm:"default:false;column:is_auto_approved" json:"is_auto_approved"`
	CreatedAt       time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	User            *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Project         *Project    `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Task            *Task       `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}

// Editable reports whether the owner may still modify or delete the entry.
func (e TimesheetEntry) Editable() bool {
	return e.Status == EntryStatusDraft || e.Status == EntryStatusRejected
}

package models

import "time"

type InviteStatus string

const (
	InviteStatusPending          InviteStatus = "PENDING"
	InviteStatusInProgress       InviteStatus = "IN_PROGRESS"
	InviteStatusSubmitted        InviteStatus = "SUBMITTED"
	InviteStatusChangesRequested InviteStatus = "CHANGES_REQUESTED"
	InviteStatusApproved         InviteStatus = "APPROVED"
)

// OnboardingInvite is one-to-one with a pending User record created at invite
// time; approving the invite activates that user.
type OnboardingInvite struct {
	ID             uint         `gorm:"primaryKey;column:id" json:"id"`
	UserID         uint         `gorm:"not null;uniqueIndex;column:user_id" json:"user_id"`
	Email          string       `gorm:"size:100;not null;index" json:"email"`
	Token          string       `gorm:"size:64;not null;uniqueIndex" json:"-"`
	Status         InviteStatus `gorm:"default:'PENDING';type:varchar(20);column:status" json:"status"`
	InvitedBy      uint         `gorm:"not null;column:invited_by" json:"invited_by"`
	ChangeRequest  *string      `gorm:"type:text;column:change_request" json:"change_request"`
	ExpiresAt      time.Time    `gorm:"column:expires_at" json:"expires_at"`
	SubmittedAt    *time.Time   `gorm:"column:submitted_at" json:"submitted_at"`
	ApprovedAt     *time.Time   `gorm:"column:approved_at" json:"approved_at"`
	ApprovedBy     *uint        `gorm:"column:approved_by" json:"approved_by"`
	CreatedAt      time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	User           *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

type ClaimStatus string

const (
	ClaimStatusDraft     ClaimStatus = "DRAFT"
	ClaimStatusSubmitted ClaimStatus = "SUBMITTED"
	ClaimStatusApproved  ClaimStatus = "APPROVED"
	ClaimStatusRejected  ClaimStatus = "REJECTED"
	ClaimStatusPaid      ClaimStatus = "PAID"
)

type ExpenseClaim struct {
	ID              uint           `gorm:"primaryKey;column:id" json:"id"`
	ClaimNumber     string         `gorm:"size:30;not null;uniqueIndex;column:claim_number" json:"claim_number"`
	UserID          uint           `gorm:"not null;index;column:user_id" json:"user_id"`
	Amount          float64        `gorm:"not null" json:"amount"`
	Currency        string         `gorm:"size:3;default:'USD'" json:"currency"`
	Category        string         `gorm:"size:50" json:"category"`
	Description     string         `gorm:"type:text" json:"description"`
	ExpenseDate     time.Time      `gorm:"type:date;column:expense_date" json:"expense_date"`
	Status          ClaimStatus    `gorm:"default:'DRAFT';type:varchar(20);index;column:status" json:"status"`
	ReceiptURLs     datatypes.JSON `gorm:"column:receipt_urls" json:"receipt_urls"`
	SubmittedAt     *time.Time     `gorm:"column:submitted_at" json:"submitted_at"`
	ApprovedAt      *time.Time     `gorm:"column:approved_at" json:"approved_at"`
	ApprovedBy      *uint          `gorm:"column:approved_by" json:"approved_by"`
	RejectedAt      *time.Time     `gorm:"column:rejected_at" json:"rejected_at"`
	RejectedBy      *uint          `gorm:"column:rejected_by" json:"rejected_by"`
	RejectionReason *string        `gorm:"type:text;column:rejection_reason" json:"rejection_reason"`
	PaidAt          *time.Time     `gorm:"column:paid_at" json:"paid_at"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	User            *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (c ExpenseClaim) Editable() bool {
	return c.Status == ClaimStatusDraft || c.Status == ClaimStatusRejected
}

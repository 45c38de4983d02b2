package models

import "time"

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

type Invoice struct {
	ID            uint              `gorm:"primaryKey;column:id" json:"id"`
	InvoiceNumber string            `gorm:"size:30;not null;uniqueIndex;column:invoice_number" json:"invoice_number"`
	UserID        uint              `gorm:"not null;column:user_id" json:"user_id"`
	ProjectID     *uint             `gorm:"column:project_id" json:"project_id"`
	Status        InvoiceStatus     `gorm:"default:'DRAFT';type:varchar(20);index;column:status" json:"status"`
	Total         float64           `gorm:"not null;default:0" json:"total"`
	Currency      string            `gorm:"size:3;default:'USD'" json:"currency"`
	IssuedAt      *time.Time        `gorm:"column:issued_at" json:"issued_at"`
	DueDate       *time.Time        `gorm:"column:due_date" json:"due_date"`
	PaidAt        *time.Time        `gorm:"column:paid_at" json:"paid_at"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	LineItems     []InvoiceLineItem `gorm:"foreignKey:InvoiceID" json:"line_items"`
}

type InvoiceLineItem struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	InvoiceID   uint      `gorm:"not null;index;column:invoice_id" json:"invoice_id"`
	EntryID     *uint     `gorm:"column:entry_id" json:"entry_id"`
	Date        time.Time `gorm:"type:date" json:"date"`
	Description string    `gorm:"type:text" json:"description"`
	Hours       float64   `json:"hours"`
	Amount      float64   `gorm:"not null" json:"amount"`
}

package models

import "time"

type NotificationStatus string

const (
	NotificationStatusSent   NotificationStatus = "sent"
	NotificationStatusFailed NotificationStatus = "failed"
)

// Notification records one reminder dispatch attempt. Failures stay failed;
// there is no automatic retry.
type Notification struct {
	ID        uint               `gorm:"primaryKey;column:id" json:"id"`
	UserID    uint               `gorm:"not null;index;column:user_id" json:"user_id"`
	Kind      string             `gorm:"size:50;not null" json:"kind"`
	WeekStart *time.Time         `gorm:"type:date;column:week_start" json:"week_start"`
	Status    NotificationStatus `gorm:"type:varchar(10);not null" json:"status"`
	Detail    string             `gorm:"type:text" json:"detail"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

package models

import "time"

type AuditLog struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	ActorID    uint      `gorm:"not null;index;column:actor_id" json:"actor_id"`
	Action     string    `gorm:"size:50;not null;index" json:"action"`
	EntityType string    `gorm:"size:30;not null;column:entity_type" json:"entity_type"`
	EntityID   uint      `gorm:"not null;column:entity_id" json:"entity_id"`
	Detail     string    `gorm:"type:text" json:"detail"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

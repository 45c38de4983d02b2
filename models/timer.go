package models

import "time"

// TimerState is the running-timer row for a user, one at most. It replaces
// the browser-local side channel the web client used to carry.
type TimerState struct {
	UserID      uint      `gorm:"primaryKey;column:user_id" json:"user_id"`
	ProjectID   *uint     `gorm:"column:project_id" json:"project_id"`
	TaskID      *uint     `gorm:"column:task_id" json:"task_id"`
	Description string    `gorm:"type:text" json:"description"`
	StartedAt   time.Time `gorm:"not null;column:started_at" json:"started_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

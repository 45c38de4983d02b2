package models

import "time"

type Project struct {
	PID         uint      `gorm:"primaryKey;column:p_id" json:"project_id"`
	ProjectName string    `gorm:"size:100;not null" json:"project_name"`
	ClientName  string    `gorm:"size:100" json:"client_name"`
	Description string    `gorm:"type:text" json:"description"`
	HourlyRate  float64   `gorm:"default:0;column:hourly_rate" json:"hourly_rate"`
	Active      bool      `gorm:"default:true" json:"active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

type Task struct {
	TID       uint      `gorm:"primaryKey;column:t_id" json:"task_id"`
	ProjectID uint      `gorm:"not null;column:project_id" json:"project_id"`
	TaskName  string    `gorm:"size:100;not null" json:"task_name"`
	Billable  bool      `gorm:"default:true" json:"billable"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Project   *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

package models

import "time"

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleManager  UserRole = "manager"
	UserRoleEmployee UserRole = "employee"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusPending  UserStatus = "pending"
	UserStatusDisabled UserStatus = "disabled"
)

type User struct {
	UID        uint       `gorm:"primaryKey;column:u_id" json:"user_id"`
	Username   string     `gorm:"size:50;not null;unique" json:"username"`
	Password   string     `gorm:"size:255;not null" json:"-"`
	Email      *string    `gorm:"size:100" json:"email"`
	FullName   *string    `gorm:"size:100" json:"full_name"`
	Role       UserRole   `gorm:"type:user_role;default:'employee';not null" json:"role"`
	Status     UserStatus `gorm:"type:user_status;default:'active';not null" json:"status"`
	ManagerID  *uint      `gorm:"column:manager_id" json:"manager_id"`
	HourlyRate float64    `gorm:"default:0;column:hourly_rate" json:"hourly_rate"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// IsRootLevel reports whether the user has no manager above them. Root-level
// users are the only ones eligible for self-approval of their own entries.
func (u User) IsRootLevel() bool {
	return u.ManagerID == nil
}

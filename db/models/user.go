package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a staff member who can log in and manage records
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"unique;not null;index" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	FullName     string `gorm:"not null" json:"full_name"`
	Role         string `gorm:"default:'inspector'" json:"role"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents an account whose equipment is tracked and inspected
type Customer struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CustomerName string `gorm:"not null;index" json:"customer_name"`

	// Contact Information
	Address      *string `json:"address"`
	ContactName  *string `json:"contact_name"`
	ContactEmail *string `gorm:"index" json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`

	// Relationships
	Devices []Device `gorm:"foreignKey:CustomerID" json:"devices,omitempty"`
	Reports []Report `gorm:"foreignKey:CustomerID" json:"reports,omitempty"`

	// Audit fields
	CreatedBy string         `json:"created_by"`
	UpdatedBy *string        `json:"updated_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

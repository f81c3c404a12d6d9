package models

import (
	"time"

	"gorm.io/gorm"
)

// ReportStatus tracks asynchronous PDF generation
type ReportStatus string

const (
	PendingReport    ReportStatus = "Pending"
	ProcessingReport ReportStatus = "Processing"
	CompletedReport  ReportStatus = "Completed"
	FailedReport     ReportStatus = "Failed"
)

// Report is a generated inspection summary PDF for a customer.
// FilePath is populated once the background worker finishes rendering.
type Report struct {
	ID           uint  `gorm:"primaryKey" json:"id"`
	CustomerID   uint  `gorm:"not null;index" json:"customer_id"`
	InspectionID *uint `gorm:"index" json:"inspection_id"`

	Title       string       `gorm:"not null" json:"title"`
	Status      ReportStatus `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	FilePath    *string      `json:"file_path"`
	ErrorReason *string      `json:"error_reason"`

	RequestedBy string     `gorm:"not null" json:"requested_by"`
	CompletedAt *time.Time `json:"completed_at"`

	// Relationships
	Customer   *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Inspection *Inspection `gorm:"foreignKey:InspectionID" json:"inspection,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

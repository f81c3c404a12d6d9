package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ImportErrorType classifies why an import row was rejected
type ImportErrorType string

const (
	MissingDataErrorType ImportErrorType = "missing_data"
	DuplicateErrorType   ImportErrorType = "duplicate"
	InvalidIDErrorType   ImportErrorType = "invalid_id"
	DatabaseErrorType    ImportErrorType = "database"
)

// ImportErrorLog persists one rejected CSV row so the error workbook and
// later audits can reconstruct what the uploader submitted.
type ImportErrorLog struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	BatchID   uuid.UUID       `gorm:"type:uuid;index" json:"batch_id"`
	RawRow    datatypes.JSON  `json:"raw_row"`
	Reason    string          `json:"reason"`
	ErrorType ImportErrorType `gorm:"type:varchar(20)" json:"error_type"`
	CreatedBy string          `json:"created_by"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

package services

import (
	"inspection-backend/db/models"
)

// RawRow is one CSV data line keyed by whatever headers the file used.
// It is kept verbatim so rejected rows can be echoed back to the uploader.
type RawRow map[string]string

// NormalizedRow is the canonical field set a raw row maps onto.
// Pointer fields are nil when the column was absent or unparseable, which
// the update path reads as "do not touch".
type NormalizedRow struct {
	ID           *uint
	DeviceName   string
	CustomerName string
	Model        *string
	// Location is accepted from legacy exports but the device schema has no
	// column for it, so it is carried here and dropped before persistence.
	Location          *string
	RackNumber        *int
	UnitStartPosition *int
	UnitEndPosition   *int
	DeviceType        *models.DeviceType
	HardwareType      *models.HardwareType
}

// ImportedDevice describes one successfully imported row
type ImportedDevice struct {
	ID           uint   `json:"id"`
	DeviceName   string `json:"device_name"`
	CustomerName string `json:"customer_name"`
	Created      bool   `json:"created,omitempty"`
	Updated      bool   `json:"updated,omitempty"`
}

// ImportRowError describes one rejected row together with the original input
type ImportRowError struct {
	Row   RawRow `json:"row"`
	Error string `json:"error"`

	ErrorType models.ImportErrorType `json:"-"`
}

// ImportResult is the terminal artifact of one import batch.
// ImportedRows + len(Errors) == TotalRows whenever the batch commits.
type ImportResult struct {
	TotalRows       int              `json:"totalRows"`
	ImportedRows    int              `json:"importedRows"`
	Errors          []ImportRowError `json:"errors,omitempty"`
	ImportedDevices []ImportedDevice `json:"importedDevices"`
}

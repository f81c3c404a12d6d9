package services

import "fmt"

// ValidationError names the first missing required field of a row
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

// ValidateRow checks the presence of the required fields, device_name first.
// It runs before any database access for the row, so a failed row never
// reaches the customer resolver or the reconciler.
func ValidateRow(row NormalizedRow) error {
	if row.DeviceName == "" {
		return &ValidationError{Field: "device_name"}
	}
	if row.CustomerName == "" {
		return &ValidationError{Field: "customer_name"}
	}
	return nil
}

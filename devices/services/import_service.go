package services

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"

	"inspection-backend/config"
	customer_repositories "inspection-backend/customers/repositories"
	"inspection-backend/db/models"
	"inspection-backend/devices/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ImportService runs one bulk device import batch end to end: decode the
// uploaded buffer, parse it, and reconcile every row against the customer
// and device tables inside a single transaction.
type ImportService struct {
	db           *gorm.DB
	customerRepo customer_repositories.CustomerRepository
	deviceRepo   repositories.DeviceRepository
}

func NewImportService(db *gorm.DB, customerRepo customer_repositories.CustomerRepository, deviceRepo repositories.DeviceRepository) *ImportService {
	return &ImportService{
		db:           db,
		customerRepo: customerRepo,
		deviceRepo:   deviceRepo,
	}
}

// Run processes one uploaded CSV buffer and returns the batch result.
//
// Failure handling has two tiers. Decode and parse failures are fatal and
// return before a transaction is opened. Inside the row loop, row-scoped
// failures (missing fields, bad update ids, duplicates, per-row constraint
// violations) are collected into the result and the loop continues; the
// transaction still commits. Only a transaction-fatal condition (connection
// loss, cancelled request, a failed savepoint or commit) rolls the whole
// batch back and surfaces as an error instead of a result.
//
// Rows are processed strictly in file order: the customer cache and the
// natural-key duplicate check both depend on seeing what earlier rows in
// the same batch created.
func (s *ImportService) Run(ctx context.Context, data []byte, uploadedBy string) (*ImportResult, error) {
	text, err := DecodeShiftJIS(data)
	if err != nil {
		return nil, err
	}

	_, rows, err := ParseRecords(text)
	if err != nil {
		return nil, err
	}

	// ImportedDevices always marshals as an array, even when every row fails
	result := &ImportResult{
		TotalRows:       len(rows),
		ImportedDevices: []ImportedDevice{},
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin import transaction: %w", tx.Error)
	}

	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	customerCache := make(map[string]*models.Customer)

	for i, raw := range rows {
		// A failed statement poisons a Postgres transaction, so each row
		// runs under its own savepoint to keep failures row-scoped.
		savepoint := fmt.Sprintf("import_row_%d", i)
		if err := tx.SavePoint(savepoint).Error; err != nil {
			return nil, fmt.Errorf("failed to create savepoint for row %d: %w", i+2, err)
		}

		outcome, failure := s.processRow(tx, customerCache, raw, uploadedBy)
		if failure != nil {
			if isFatalDBError(failure.cause) {
				config.Logger.Error("Fatal database error during device import, rolling back batch",
					zap.Int("row", i+2), zap.Error(failure.cause))
				return nil, fmt.Errorf("import aborted at row %d: %w", i+2, failure.cause)
			}
			if err := tx.RollbackTo(savepoint).Error; err != nil {
				return nil, fmt.Errorf("failed to roll back row %d: %w", i+2, err)
			}
			result.Errors = append(result.Errors, ImportRowError{
				Row:       raw,
				Error:     failure.message,
				ErrorType: failure.errorType,
			})
			continue
		}

		result.ImportedDevices = append(result.ImportedDevices, *outcome)
		result.ImportedRows++
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit import transaction: %w", err)
	}
	committed = true

	config.Logger.Info("Device import batch committed",
		zap.Int("totalRows", result.TotalRows),
		zap.Int("importedRows", result.ImportedRows),
		zap.Int("errorRows", len(result.Errors)))

	return result, nil
}

// processRow takes one raw row through normalize, validate, resolve and
// reconcile. On failure it undoes its own cache bookkeeping: a customer
// created for a row that then fails is rolled back with the savepoint, so
// it must not stay cached.
func (s *ImportService) processRow(tx *gorm.DB, cache map[string]*models.Customer, raw RawRow, uploadedBy string) (*ImportedDevice, *rowFailure) {
	normalized := NormalizeRow(raw)

	if err := ValidateRow(normalized); err != nil {
		return nil, &rowFailure{message: err.Error(), errorType: models.MissingDataErrorType}
	}

	customer, created, err := s.resolveCustomer(tx, cache, normalized.CustomerName, uploadedBy)
	if err != nil {
		return nil, &rowFailure{
			message:   fmt.Sprintf("failed to resolve customer %q: %v", normalized.CustomerName, err),
			errorType: models.DatabaseErrorType,
			cause:     err,
		}
	}

	outcome, failure := s.reconcileDevice(tx, normalized, customer, uploadedBy)
	if failure != nil {
		if created {
			delete(cache, normalized.CustomerName)
		}
		return nil, failure
	}

	return outcome, nil
}

// isFatalDBError reports whether a row-level error actually invalidates the
// whole transaction rather than just the row.
func isFatalDBError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, gorm.ErrInvalidTransaction) ||
		errors.Is(err, gorm.ErrInvalidDB)
}

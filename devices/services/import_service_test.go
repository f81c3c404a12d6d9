package services_test

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"

	"inspection-backend/config"
	customer_repositories "inspection-backend/customers/repositories"
	device_repositories "inspection-backend/devices/repositories"
	"inspection-backend/devices/services"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop()
	m.Run()
}

func newMockedImportService(t *testing.T) (*services.ImportService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	require.NoError(t, err)

	customerRepo := customer_repositories.NewCustomerRepository(gormDB)
	deviceRepo := device_repositories.NewDeviceRepository(gormDB)

	return services.NewImportService(gormDB, customerRepo, deviceRepo), mock
}

func customerColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "customer_name", "created_by"})
}

func deviceColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "customer_id", "device_name", "device_type", "hardware_type"})
}

func TestImportRun_CreatesDevicesAndSharesCustomerLookups(t *testing.T) {
	svc, mock := newMockedImportService(t)

	csv := "device_name,customer_name\nweb01,Acme\ndb01,Acme\n"

	mock.ExpectBegin()

	// row 1: customer miss, create, then device create.
	mock.ExpectExec(`SAVEPOINT import_row_0`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customer_name = \$1`).
		WithArgs("Acme", 1).
		WillReturnRows(customerColumns())
	mock.ExpectQuery(`INSERT INTO "customers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`SELECT \* FROM "devices" WHERE \(customer_id = \$1 AND device_name = \$2\)`).
		WithArgs(7, "web01", 1).
		WillReturnRows(deviceColumns())
	mock.ExpectQuery(`INSERT INTO "devices"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	// row 2: same customer, served from the batch cache with no SELECT.
	mock.ExpectExec(`SAVEPOINT import_row_1`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "devices" WHERE \(customer_id = \$1 AND device_name = \$2\)`).
		WithArgs(7, "db01", 1).
		WillReturnRows(deviceColumns())
	mock.ExpectQuery(`INSERT INTO "devices"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	mock.ExpectCommit()

	result, err := svc.Run(context.Background(), []byte(csv), "admin@example.com")
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 2, result.ImportedRows)
	assert.Empty(t, result.Errors)
	require.Len(t, result.ImportedDevices, 2)
	assert.True(t, result.ImportedDevices[0].Created)
	assert.Equal(t, uint(10), result.ImportedDevices[0].ID)
	assert.Equal(t, "web01", result.ImportedDevices[0].DeviceName)
	assert.Equal(t, "Acme", result.ImportedDevices[0].CustomerName)
	assert.True(t, result.ImportedDevices[1].Created)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportRun_UpdatePathTouchesOnlySuppliedFields(t *testing.T) {
	svc, mock := newMockedImportService(t)

	csv := "id,device_name,customer_name,model\n42,web01-renamed,Acme,R650\n"

	mock.ExpectBegin()
	mock.ExpectExec(`SAVEPOINT import_row_0`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customer_name = \$1`).
		WithArgs("Acme", 1).
		WillReturnRows(customerColumns().AddRow(7, "Acme", "importer"))
	mock.ExpectQuery(`SELECT \* FROM "devices" WHERE "devices"."id" = \$1`).
		WithArgs(42, 1).
		WillReturnRows(deviceColumns().AddRow(42, 7, "web01", "Server", "Physical"))
	mock.ExpectExec(`UPDATE "devices" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := svc.Run(context.Background(), []byte(csv), "admin@example.com")
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalRows)
	assert.Equal(t, 1, result.ImportedRows)
	require.Len(t, result.ImportedDevices, 1)
	assert.True(t, result.ImportedDevices[0].Updated)
	assert.Equal(t, "web01-renamed", result.ImportedDevices[0].DeviceName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportRun_UnknownUpdateIDIsRowError(t *testing.T) {
	svc, mock := newMockedImportService(t)

	csv := "id,device_name,customer_name\n42,web01,Acme\n"

	mock.ExpectBegin()
	mock.ExpectExec(`SAVEPOINT import_row_0`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customer_name = \$1`).
		WithArgs("Acme", 1).
		WillReturnRows(customerColumns().AddRow(7, "Acme", "importer"))
	mock.ExpectQuery(`SELECT \* FROM "devices" WHERE "devices"."id" = \$1`).
		WithArgs(42, 1).
		WillReturnRows(deviceColumns())
	mock.ExpectExec(`ROLLBACK TO SAVEPOINT import_row_0`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	result, err := svc.Run(context.Background(), []byte(csv), "admin@example.com")
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalRows)
	assert.Equal(t, 0, result.ImportedRows)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Error, "specified ID 42 does not exist")
	assert.Equal(t, result.TotalRows, result.ImportedRows+len(result.Errors))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportRun_DuplicateNaturalKeyIsRejected(t *testing.T) {
	svc, mock := newMockedImportService(t)

	csv := "device_name,customer_name\nweb01,Acme\n"

	mock.ExpectBegin()
	mock.ExpectExec(`SAVEPOINT import_row_0`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customer_name = \$1`).
		WithArgs("Acme", 1).
		WillReturnRows(customerColumns().AddRow(7, "Acme", "importer"))
	mock.ExpectQuery(`SELECT \* FROM "devices" WHERE \(customer_id = \$1 AND device_name = \$2\)`).
		WithArgs(7, "web01", 1).
		WillReturnRows(deviceColumns().AddRow(99, 7, "web01", "Server", "Physical"))
	mock.ExpectExec(`ROLLBACK TO SAVEPOINT import_row_0`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	result, err := svc.Run(context.Background(), []byte(csv), "admin@example.com")
	require.NoError(t, err)

	assert.Equal(t, 0, result.ImportedRows)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Error, `already exists for customer "Acme"`)
	assert.Contains(t, result.Errors[0].Error, "supply its ID")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportRun_ValidationFailuresSkipDatabaseEntirely(t *testing.T) {
	svc, mock := newMockedImportService(t)

	// second row is missing customer_name, third is missing device_name
	csv := "device_name,customer_name\nweb01,Acme\ndb01,\n,Acme\n"

	mock.ExpectBegin()

	mock.ExpectExec(`SAVEPOINT import_row_0`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customer_name = \$1`).
		WithArgs("Acme", 1).
		WillReturnRows(customerColumns().AddRow(7, "Acme", "importer"))
	mock.ExpectQuery(`SELECT \* FROM "devices" WHERE \(customer_id = \$1 AND device_name = \$2\)`).
		WithArgs(7, "web01", 1).
		WillReturnRows(deviceColumns())
	mock.ExpectQuery(`INSERT INTO "devices"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	// the invalid rows only open and roll back their savepoints
	mock.ExpectExec(`SAVEPOINT import_row_1`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`ROLLBACK TO SAVEPOINT import_row_1`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`SAVEPOINT import_row_2`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`ROLLBACK TO SAVEPOINT import_row_2`).WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectCommit()

	result, err := svc.Run(context.Background(), []byte(csv), "admin@example.com")
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 1, result.ImportedRows)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0].Error, `"customer_name" is missing`)
	assert.Contains(t, result.Errors[1].Error, `"device_name" is missing`)
	assert.Equal(t, result.TotalRows, result.ImportedRows+len(result.Errors))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportRun_ParseFailureNeverOpensTransaction(t *testing.T) {
	svc, mock := newMockedImportService(t)

	_, err := svc.Run(context.Background(), []byte("device_name,customer_name\nweb01,Acme,extra\n"), "admin@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportRun_DecodeFailureNeverOpensTransaction(t *testing.T) {
	svc, mock := newMockedImportService(t)

	_, err := svc.Run(context.Background(), []byte{0xFF, 0xFF}, "admin@example.com")
	require.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportRun_ConnectionLossAbortsWholeBatch(t *testing.T) {
	svc, mock := newMockedImportService(t)

	csv := "device_name,customer_name\nweb01,Acme\n"

	mock.ExpectBegin()
	mock.ExpectExec(`SAVEPOINT import_row_0`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customer_name = \$1`).
		WithArgs("Acme", 1).
		WillReturnError(driver.ErrBadConn)
	mock.ExpectRollback()

	result, err := svc.Run(context.Background(), []byte(csv), "admin@example.com")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "import aborted at row 2")
	assert.ErrorIs(t, err, driver.ErrBadConn)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportRun_AllRowsRejectedStillReportsDeviceArray(t *testing.T) {
	svc, mock := newMockedImportService(t)

	csv := "device_name,customer_name\nweb01,\n"

	mock.ExpectBegin()
	mock.ExpectExec(`SAVEPOINT import_row_0`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`ROLLBACK TO SAVEPOINT import_row_0`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	result, err := svc.Run(context.Background(), []byte(csv), "admin@example.com")
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalRows)
	assert.Equal(t, 0, result.ImportedRows)
	require.Len(t, result.Errors, 1)

	// an empty batch result still carries the device list as an array
	body, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"importedDevices":[]`)

	assert.NoError(t, mock.ExpectationsWereMet())
}

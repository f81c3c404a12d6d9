package repositories_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"

	"inspection-backend/config"
	"inspection-backend/db/models"
	"inspection-backend/devices/repositories"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop()
	m.Run()
}

func newMockedRepo(t *testing.T) (repositories.DeviceRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	require.NoError(t, err)

	return repositories.NewDeviceRepository(gormDB), mock
}

func TestGetDeviceByNaturalKey_Found(t *testing.T) {
	repo, mock := newMockedRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "devices" WHERE \(customer_id = \$1 AND device_name = \$2\)`).
		WithArgs(7, "web01", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "device_name"}).
			AddRow(42, 7, "web01"))

	device, err := repo.GetDeviceByNaturalKey(nil, 7, "web01")
	require.NoError(t, err)
	require.NotNil(t, device)
	assert.Equal(t, uint(42), device.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDeviceByNaturalKey_AbsenceIsNotAnError(t *testing.T) {
	repo, mock := newMockedRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "devices" WHERE \(customer_id = \$1 AND device_name = \$2\)`).
		WithArgs(7, "ghost", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	device, err := repo.GetDeviceByNaturalKey(nil, 7, "ghost")
	require.NoError(t, err)
	assert.Nil(t, device)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDeviceByID_AbsenceIsNotAnError(t *testing.T) {
	repo, mock := newMockedRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "devices" WHERE "devices"."id" = \$1`).
		WithArgs(999, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	device, err := repo.GetDeviceByID(nil, 999)
	require.NoError(t, err)
	assert.Nil(t, device)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDevice(t *testing.T) {
	repo, mock := newMockedRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "devices"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	created, err := repo.CreateDevice(nil, &models.Device{
		CustomerID:   7,
		DeviceName:   "web01",
		DeviceType:   models.ServerDevice,
		HardwareType: models.PhysicalHardware,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), created.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFilteredDevices_CustomerAndTypeFilters(t *testing.T) {
	repo, mock := newMockedRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "devices"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "devices"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "device_name", "device_type"}).
			AddRow(42, 7, "ups01", "UPS"))
	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE "customers"."id" = \$1`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_name"}).AddRow(7, "Acme"))

	devices, total, err := repo.GetFilteredDevices(20, 0, map[string]string{
		"customer_id": "7",
		"device_type": "UPS",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, devices, 1)
	assert.Equal(t, models.UPSDevice, devices[0].DeviceType)
	require.NotNil(t, devices[0].Customer)
	assert.Equal(t, "Acme", devices[0].Customer.CustomerName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

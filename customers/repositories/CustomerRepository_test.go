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
	"inspection-backend/customers/repositories"
	"inspection-backend/db/models"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop()
	m.Run()
}

func newMockedRepo(t *testing.T) (repositories.CustomerRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	require.NoError(t, err)

	return repositories.NewCustomerRepository(gormDB), mock
}

func TestGetCustomerByName_Found(t *testing.T) {
	repo, mock := newMockedRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customer_name = \$1`).
		WithArgs("Acme", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_name"}).AddRow(7, "Acme"))

	customer, err := repo.GetCustomerByName(nil, "Acme")
	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, uint(7), customer.ID)
	assert.Equal(t, "Acme", customer.CustomerName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCustomerByName_AbsenceIsNotAnError(t *testing.T) {
	repo, mock := newMockedRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customer_name = \$1`).
		WithArgs("Nobody", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_name"}))

	customer, err := repo.GetCustomerByName(nil, "Nobody")
	require.NoError(t, err)
	assert.Nil(t, customer)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCustomer(t *testing.T) {
	repo, mock := newMockedRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "customers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	created, err := repo.CreateCustomer(nil, &models.Customer{
		CustomerName: "Acme",
		CreatedBy:    "admin@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), created.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFilteredCustomers_NameFilter(t *testing.T) {
	repo, mock := newMockedRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "customers" WHERE customer_name ILIKE \$1`).
		WithArgs("%acme%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customer_name ILIKE \$1`).
		WithArgs("%acme%", 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_name"}).AddRow(7, "Acme Corp"))

	customers, total, err := repo.GetFilteredCustomers(20, 0, map[string]string{"customer_name": "acme"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, customers, 1)
	assert.Equal(t, "Acme Corp", customers[0].CustomerName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCustomer_SoftDeletes(t *testing.T) {
	repo, mock := newMockedRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "customers" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteCustomer(7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

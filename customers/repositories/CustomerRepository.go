package repositories

import (
	"errors"
	"fmt"

	"inspection-backend/config"
	"inspection-backend/db/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	CreateCustomer(tx *gorm.DB, customer *models.Customer) (*models.Customer, error)
	GetCustomerByID(id uint) (*models.Customer, error)
	GetCustomerByName(tx *gorm.DB, name string) (*models.Customer, error)
	GetFilteredCustomers(limit, offset int, filters map[string]string) ([]models.Customer, int64, error)
	UpdateCustomer(tx *gorm.DB, customer *models.Customer) (*models.Customer, error)
	DeleteCustomer(id uint) error
}

type customerRepository struct {
	DB *gorm.DB
}

// NewCustomerRepository initializes a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{DB: db}
}

func (cr *customerRepository) CreateCustomer(tx *gorm.DB, customer *models.Customer) (*models.Customer, error) {
	db := cr.dbOrTx(tx)
	if err := db.Create(customer).Error; err != nil {
		config.Logger.Error("Failed to create customer",
			zap.String("customerName", customer.CustomerName), zap.Error(err))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

func (cr *customerRepository) GetCustomerByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := cr.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer %d: %w", id, err)
	}
	return &customer, nil
}

// GetCustomerByName looks a customer up by exact name match. Returns
// (nil, nil) when no record exists so callers can distinguish absence from
// a database failure.
func (cr *customerRepository) GetCustomerByName(tx *gorm.DB, name string) (*models.Customer, error) {
	db := cr.dbOrTx(tx)
	var customer models.Customer
	if err := db.Where("customer_name = ?", name).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up customer by name: %w", err)
	}
	return &customer, nil
}

func (cr *customerRepository) GetFilteredCustomers(limit, offset int, filters map[string]string) ([]models.Customer, int64, error) {
	var customers []models.Customer
	var total int64

	query := cr.DB.Model(&models.Customer{})
	if name := filters["customer_name"]; name != "" {
		query = query.Where("customer_name ILIKE ?", "%"+name+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("updated_at DESC, created_at DESC").Limit(limit).Offset(offset).Find(&customers).Error; err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

func (cr *customerRepository) UpdateCustomer(tx *gorm.DB, customer *models.Customer) (*models.Customer, error) {
	db := cr.dbOrTx(tx)
	if err := db.Save(customer).Error; err != nil {
		config.Logger.Error("Failed to update customer", zap.Uint("id", customer.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

func (cr *customerRepository) DeleteCustomer(id uint) error {
	if err := cr.DB.Delete(&models.Customer{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete customer %d: %w", id, err)
	}
	return nil
}

func (cr *customerRepository) dbOrTx(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return cr.DB
}

package services

import (
	"inspection-backend/config"
	"inspection-backend/db/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// resolveCustomer finds or creates the parent customer for a row. The cache
// is scoped to one batch: for N rows sharing a customer name, at most one
// SELECT and at most one INSERT happen regardless of row order. The second
// return value reports whether this call created the customer, so the
// coordinator can evict it from the cache if the row is rolled back.
func (s *ImportService) resolveCustomer(tx *gorm.DB, cache map[string]*models.Customer, name, uploadedBy string) (*models.Customer, bool, error) {
	if customer, ok := cache[name]; ok {
		return customer, false, nil
	}

	customer, err := s.customerRepo.GetCustomerByName(tx, name)
	if err != nil {
		return nil, false, err
	}
	if customer != nil {
		cache[name] = customer
		return customer, false, nil
	}

	customer, err = s.customerRepo.CreateCustomer(tx, &models.Customer{
		CustomerName: name,
		CreatedBy:    uploadedBy,
	})
	if err != nil {
		return nil, false, err
	}

	config.Logger.Info("Created customer during device import",
		zap.String("customerName", name), zap.Uint("customerID", customer.ID))

	cache[name] = customer
	return customer, true, nil
}

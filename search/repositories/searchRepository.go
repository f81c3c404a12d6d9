package repositories

import (
	"fmt"

	"inspection-backend/db/models"
	"inspection-backend/search/services"

	"github.com/blevesearch/bleve/v2"
)

const (
	DeviceIndex   = "devices"
	CustomerIndex = "customers"
)

// SearchRepository wraps the bleve indexing service with the two entity
// indexes this system maintains.
type SearchRepository struct {
	indexer services.IndexingServiceInterface
}

type SearchRepositoryInterface interface {
	IndexDevice(device models.Device) error
	DeleteDevice(deviceID uint) error
	IndexCustomer(customer models.Customer) error
	DeleteCustomer(customerID uint) error
	SearchDevices(q string, size int) (*bleve.SearchResult, error)
	SearchCustomers(q string, size int) (*bleve.SearchResult, error)
}

func NewSearchRepository(indexer services.IndexingServiceInterface) SearchRepositoryInterface {
	return &SearchRepository{indexer: indexer}
}

func (r *SearchRepository) IndexDevice(device models.Device) error {
	doc := map[string]interface{}{
		"device_name":   device.DeviceName,
		"device_type":   string(device.DeviceType),
		"hardware_type": string(device.HardwareType),
		"customer_id":   fmt.Sprintf("%d", device.CustomerID),
	}
	if device.Model != nil {
		doc["model"] = *device.Model
	}
	if device.Customer != nil {
		doc["customer_name"] = device.Customer.CustomerName
	}
	return r.indexer.IndexDocument(DeviceIndex, fmt.Sprintf("%d", device.ID), doc)
}

func (r *SearchRepository) DeleteDevice(deviceID uint) error {
	return r.indexer.DeleteDocument(DeviceIndex, fmt.Sprintf("%d", deviceID))
}

func (r *SearchRepository) IndexCustomer(customer models.Customer) error {
	doc := map[string]interface{}{
		"customer_name": customer.CustomerName,
	}
	if customer.Address != nil {
		doc["address"] = *customer.Address
	}
	if customer.ContactName != nil {
		doc["contact_name"] = *customer.ContactName
	}
	return r.indexer.IndexDocument(CustomerIndex, fmt.Sprintf("%d", customer.ID), doc)
}

func (r *SearchRepository) DeleteCustomer(customerID uint) error {
	return r.indexer.DeleteDocument(CustomerIndex, fmt.Sprintf("%d", customerID))
}

func (r *SearchRepository) SearchDevices(q string, size int) (*bleve.SearchResult, error) {
	query := bleve.NewMatchQuery(q)
	return r.indexer.SearchIndex(DeviceIndex, query, size)
}

func (r *SearchRepository) SearchCustomers(q string, size int) (*bleve.SearchResult, error) {
	query := bleve.NewMatchQuery(q)
	return r.indexer.SearchIndex(CustomerIndex, query, size)
}

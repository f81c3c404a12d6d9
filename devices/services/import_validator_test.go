package services_test

import (
	"testing"

	"inspection-backend/devices/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRow_DeviceNameCheckedFirst(t *testing.T) {
	// both required fields missing: device_name is reported
	err := services.ValidateRow(services.NormalizedRow{})
	require.Error(t, err)
	assert.Equal(t, `required field "device_name" is missing`, err.Error())
}

func TestValidateRow_MissingCustomerName(t *testing.T) {
	err := services.ValidateRow(services.NormalizedRow{DeviceName: "web01"})
	require.Error(t, err)
	assert.Equal(t, `required field "customer_name" is missing`, err.Error())
}

func TestValidateRow_CompleteRowPasses(t *testing.T) {
	err := services.ValidateRow(services.NormalizedRow{
		DeviceName:   "web01",
		CustomerName: "Acme",
	})
	assert.NoError(t, err)
}

package services_test

import (
	"testing"

	"inspection-backend/db/models"
	"inspection-backend/devices/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRow_LocalizedHeaders(t *testing.T) {
	row := services.RawRow{
		"機器名":      "サーバ01",
		"顧客名":      "株式会社アクメ",
		"型番":       "R640",
		"ラック番号":    "12",
		"ユニット開始位置": "30",
		"ユニット終了位置": "31",
	}

	normalized := services.NormalizeRow(row)

	assert.Equal(t, "サーバ01", normalized.DeviceName)
	assert.Equal(t, "株式会社アクメ", normalized.CustomerName)
	require.NotNil(t, normalized.Model)
	assert.Equal(t, "R640", *normalized.Model)
	require.NotNil(t, normalized.RackNumber)
	assert.Equal(t, 12, *normalized.RackNumber)
	require.NotNil(t, normalized.UnitStartPosition)
	assert.Equal(t, 30, *normalized.UnitStartPosition)
	require.NotNil(t, normalized.UnitEndPosition)
	assert.Equal(t, 31, *normalized.UnitEndPosition)
}

func TestNormalizeRow_ASCIIAliasesAreCaseInsensitive(t *testing.T) {
	row := services.RawRow{
		"Device Name":   "web01",
		"CUSTOMER_NAME": "Acme",
	}

	normalized := services.NormalizeRow(row)

	assert.Equal(t, "web01", normalized.DeviceName)
	assert.Equal(t, "Acme", normalized.CustomerName)
}

func TestNormalizeRow_MachineNameAliasForDeviceName(t *testing.T) {
	normalized := services.NormalizeRow(services.RawRow{
		"machine_name":  "web01",
		"customer_name": "Acme",
	})
	assert.Equal(t, "web01", normalized.DeviceName)
}

func TestNormalizeRow_IDParsing(t *testing.T) {
	normalized := services.NormalizeRow(services.RawRow{
		"ID":            "42",
		"device_name":   "web01",
		"customer_name": "Acme",
	})
	require.NotNil(t, normalized.ID)
	assert.Equal(t, uint(42), *normalized.ID)

	// non-numeric ids fall back to the create path
	normalized = services.NormalizeRow(services.RawRow{
		"ID":            "abc",
		"device_name":   "web01",
		"customer_name": "Acme",
	})
	assert.Nil(t, normalized.ID)
}

func TestNormalizeRow_InvalidEnumsCoerceToDefaults(t *testing.T) {
	normalized := services.NormalizeRow(services.RawRow{
		"device_name":   "web01",
		"customer_name": "Acme",
		"device_type":   "Mainframe",
		"hardware_type": "Container",
	})

	require.NotNil(t, normalized.DeviceType)
	assert.Equal(t, models.ServerDevice, *normalized.DeviceType)
	require.NotNil(t, normalized.HardwareType)
	assert.Equal(t, models.PhysicalHardware, *normalized.HardwareType)
}

func TestNormalizeRow_ValidEnumsSurvive(t *testing.T) {
	normalized := services.NormalizeRow(services.RawRow{
		"device_name":   "ups01",
		"customer_name": "Acme",
		"device_type":   "UPS",
		"hardware_type": "VM",
	})

	require.NotNil(t, normalized.DeviceType)
	assert.Equal(t, models.UPSDevice, *normalized.DeviceType)
	require.NotNil(t, normalized.HardwareType)
	assert.Equal(t, models.VMHardware, *normalized.HardwareType)
}

func TestNormalizeRow_AbsentEnumsStayNil(t *testing.T) {
	normalized := services.NormalizeRow(services.RawRow{
		"device_name":   "web01",
		"customer_name": "Acme",
	})

	assert.Nil(t, normalized.DeviceType)
	assert.Nil(t, normalized.HardwareType)
	assert.Nil(t, normalized.Model)
	assert.Nil(t, normalized.RackNumber)
}

func TestNormalizeRow_NonNumericRackPositionsDropped(t *testing.T) {
	normalized := services.NormalizeRow(services.RawRow{
		"device_name":   "web01",
		"customer_name": "Acme",
		"rack_number":   "A-12",
	})
	assert.Nil(t, normalized.RackNumber)
}

package services

import (
	"strconv"
	"strings"

	"inspection-backend/db/models"
)

// fieldAliases maps each canonical field to its accepted header spellings,
// localized name first. Lookup is order-sensitive: the first alias present
// with a non-empty value wins. ASCII aliases are matched case-insensitively
// with spaces folded to underscores, so "Device Name" and "device_name" are
// the same column.
var fieldAliases = map[string][]string{
	"id":                  {"ID", "id"},
	"device_name":         {"機器名", "device_name", "machine_name"},
	"customer_name":       {"顧客名", "customer_name"},
	"model":               {"型番", "model"},
	"location":            {"設置場所", "location"},
	"rack_number":         {"ラック番号", "rack_number"},
	"unit_start_position": {"ユニット開始位置", "unit_start_position"},
	"unit_end_position":   {"ユニット終了位置", "unit_end_position"},
	"device_type":         {"機器種別", "device_type"},
	"hardware_type":       {"ハードウェア種別", "hardware_type"},
}

func canonicalHeader(h string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(h), " ", "_"))
}

// lookupField returns the value of the first matching alias for a canonical
// field, or "" when no alias is present or every match is empty.
func lookupField(row RawRow, field string) string {
	for _, alias := range fieldAliases[field] {
		want := canonicalHeader(alias)
		for header, value := range row {
			if canonicalHeader(header) == want && value != "" {
				return value
			}
		}
	}
	return ""
}

// NormalizeRow maps one raw row onto the canonical field set and applies
// defaults. Enumerated fields outside their accepted domain are coerced to
// the documented default instead of rejected; legacy exports carry free-text
// in those columns and the import is deliberately lenient about them.
func NormalizeRow(row RawRow) NormalizedRow {
	normalized := NormalizedRow{
		DeviceName:        lookupField(row, "device_name"),
		CustomerName:      lookupField(row, "customer_name"),
		Model:             optionalString(lookupField(row, "model")),
		Location:          optionalString(lookupField(row, "location")),
		RackNumber:        optionalInt(lookupField(row, "rack_number")),
		UnitStartPosition: optionalInt(lookupField(row, "unit_start_position")),
		UnitEndPosition:   optionalInt(lookupField(row, "unit_end_position")),
	}

	if raw := lookupField(row, "id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			v := uint(id)
			normalized.ID = &v
		}
	}

	if raw := lookupField(row, "device_type"); raw != "" {
		dt := models.DeviceType(raw)
		if !models.ValidDeviceTypes[dt] {
			dt = models.ServerDevice
		}
		normalized.DeviceType = &dt
	}

	if raw := lookupField(row, "hardware_type"); raw != "" {
		ht := models.HardwareType(raw)
		if !models.ValidHardwareTypes[ht] {
			ht = models.PhysicalHardware
		}
		normalized.HardwareType = &ht
	}

	return normalized
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func optionalInt(v string) *int {
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseRecords parses decoded CSV text into header-keyed rows.
// The first non-empty line always defines the field names; there is no
// positional fallback. Malformed quoting or an inconsistent field count is a
// parse failure that aborts the batch before any row is processed.
func ParseRecords(text string) ([]string, []RawRow, error) {
	reader := csv.NewReader(strings.NewReader(text))
	// FieldsPerRecord is left at 0: the header fixes the column count and
	// every data line must match it.

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("file contains no rows")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV header: %w", err)
	}

	headers := make([]string, len(header))
	for i, h := range header {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse CSV row %d: %w", len(rows)+2, err)
		}

		row := make(RawRow, len(headers))
		empty := true
		for i, cell := range record {
			value := strings.TrimSpace(cell)
			if value != "" {
				empty = false
			}
			row[headers[i]] = value
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	return headers, rows, nil
}

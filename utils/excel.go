package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/xuri/excelize/v2"
)

// EnsureDirectoryExists ensures the specified directory exists before file saving
func EnsureDirectoryExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return fmt.Errorf("error creating directory: %v", err)
		}
	}
	return nil
}

// GenerateExcel creates an Excel workbook under public/files from a slice of
// structs, writing one column per header. Headers must match exported field
// names on the element type.
func GenerateExcel(data interface{}, fileTag string, headers []string) (string, error) {
	dirPath := "./public/files"
	if err := EnsureDirectoryExists(dirPath); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("error resolving header cell: %v", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return "", fmt.Errorf("error setting header %s: %v", header, err)
		}
	}

	dataSlice := reflect.ValueOf(data)
	if dataSlice.Kind() != reflect.Slice {
		return "", fmt.Errorf("expected data to be a slice")
	}

	for row := 0; row < dataSlice.Len(); row++ {
		item := reflect.ValueOf(dataSlice.Index(row).Interface())
		for col, header := range headers {
			field := item.FieldByName(header)
			if !field.IsValid() {
				continue
			}
			value := field.Interface()
			if field.Kind() == reflect.Ptr {
				if field.IsNil() {
					continue
				}
				value = field.Elem().Interface()
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return "", fmt.Errorf("error resolving data cell: %v", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return "", fmt.Errorf("error setting value for %s: %v", header, err)
			}
		}
	}

	filePath := filepath.Join(dirPath, fmt.Sprintf("%s.xlsx", fileTag))
	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving Excel file: %v", err)
	}

	return filePath, nil
}

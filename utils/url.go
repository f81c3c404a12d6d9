package utils

import (
	"fmt"
	"os"
	"strings"
)

// GenerateDownloadLink builds an absolute URL for a file under public/,
// based on the configured BASE_URL.
func GenerateDownloadLink(filePath string) string {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	filePath = strings.TrimPrefix(filePath, "./")
	filePath = strings.TrimPrefix(filePath, "/")
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(baseURL, "/"), filePath)
}

package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// LoadEnv loads the .env file. Missing file is not fatal so containerized
// deployments can rely on real environment variables instead.
func LoadEnv() {
	if err := godotenv.Load(".env"); err != nil {
		Logger.Warn("No .env file loaded, relying on process environment", zap.Error(err))
	}
}

// GetEnv returns the value of an environment variable, or "" when unset
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvWithDefault returns the value of an environment variable, falling back to def
func GetEnvWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

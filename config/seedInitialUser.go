package config

import (
	"errors"

	"inspection-backend/db/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedInitialAdminUser creates the first admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD when the users table is empty. A fresh deployment needs one
// login before anyone can reach the protected endpoints.
func SeedInitialAdminUser(db *gorm.DB) error {
	email := GetEnv("ADMIN_EMAIL")
	password := GetEnv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		Logger.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     GetEnvWithDefault("ADMIN_FULL_NAME", "System Administrator"),
		Role:         "admin",
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	Logger.Info("Seeded initial admin user", zap.String("email", email))
	return nil
}

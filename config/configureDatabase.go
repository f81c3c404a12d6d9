package config

import (
	"fmt"
	"log"
	"time"

	"inspection-backend/db/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// allModels defines all models that should be migrated.
// This is the only place you need to add new models.
var allModels = []interface{}{
	&models.User{},
	&models.Customer{},
	&models.Device{},
	&models.Inspection{},
	&models.Report{},
	&models.EmailLog{},
	&models.ImportErrorLog{},
}

func ConfigureDatabase() *gorm.DB {
	host := GetEnv("DB_HOST")
	user := GetEnv("POSTGRES_USER")
	password := GetEnv("POSTGRES_PASSWORD")
	dbname := GetEnv("POSTGRES_DB")
	port := GetEnv("DB_PORT")
	timezone := GetEnvWithDefault("DB_TIMEZONE", "Asia/Tokyo")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		host, user, password, dbname, port, timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("[DB-CONNECT] Failed to connect to database: %v", err)
	}

	// Auto-migrate all models using the allModels slice
	err = db.AutoMigrate(allModels...)
	if err != nil {
		log.Fatalf("failed to migrate tables: %v", err)
	} else {
		log.Println("Tables migrated successfully")
	}

	if err := CreateDeviceNaturalKeyPartialIndex(db); err != nil {
		log.Fatalf("failed to create device natural key index: %v", err)
	}

	// Connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("[DB-POOL] Failed to get underlying DB connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	log.Println("[DB-POOL] Connection pool configured")
	log.Println("[DB-STATUS] Database setup complete")
	return db
}

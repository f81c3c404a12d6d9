package controllers

import (
	device_repositories "inspection-backend/devices/repositories"
	"inspection-backend/inspections/repositories"

	"gorm.io/gorm"
)

type InspectionController struct {
	InspectionRepo repositories.InspectionRepository
	DeviceRepo     device_repositories.DeviceRepository
	DB             *gorm.DB
}

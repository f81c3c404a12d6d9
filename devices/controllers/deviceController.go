package controllers

import (
	"inspection-backend/devices/repositories"
	"inspection-backend/devices/services"
	search_repositories "inspection-backend/search/repositories"

	"gorm.io/gorm"
)

type DeviceController struct {
	DeviceRepo    repositories.DeviceRepository
	ImportService *services.ImportService
	SearchRepo    search_repositories.SearchRepositoryInterface
	DB            *gorm.DB
}

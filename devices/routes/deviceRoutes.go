package routes

import (
	controllers "inspection-backend/devices/controllers"
	"inspection-backend/devices/repositories"
	"inspection-backend/devices/services"
	"inspection-backend/middleware"
	search_repositories "inspection-backend/search/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DeviceInitRoutes(
	app *fiber.App,
	deviceRepo repositories.DeviceRepository,
	importService *services.ImportService,
	searchRepo search_repositories.SearchRepositoryInterface,
	db *gorm.DB,
	appCtx *middleware.AppContext,
) {
	deviceController := &controllers.DeviceController{
		DeviceRepo:    deviceRepo,
		ImportService: importService,
		SearchRepo:    searchRepo,
		DB:            db,
	}

	api := app.Group("/api/v1")
	protected := middleware.ProtectedRoute(appCtx)

	api.Post("/devices/import", protected, deviceController.ImportDevicesController)
	api.Get("/devices/export", protected, deviceController.ExportDevicesController)
	api.Get("/devices/filtered", protected, deviceController.GetFilteredDevicesController)
	api.Get("/devices/:id", protected, deviceController.GetSingleDeviceController)
	api.Post("/devices", protected, deviceController.CreateDeviceController)
	api.Put("/devices/:id", protected, deviceController.UpdateDeviceController)
	api.Delete("/devices/:id", protected, deviceController.DeleteDeviceController)
}

package routes

import (
	device_repositories "inspection-backend/devices/repositories"
	controllers "inspection-backend/inspections/controllers"
	"inspection-backend/inspections/repositories"
	"inspection-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func InspectionInitRoutes(
	app *fiber.App,
	inspectionRepo repositories.InspectionRepository,
	deviceRepo device_repositories.DeviceRepository,
	db *gorm.DB,
	appCtx *middleware.AppContext,
) {
	inspectionController := &controllers.InspectionController{
		InspectionRepo: inspectionRepo,
		DeviceRepo:     deviceRepo,
		DB:             db,
	}

	api := app.Group("/api/v1")
	protected := middleware.ProtectedRoute(appCtx)

	api.Get("/inspections/filtered", protected, inspectionController.GetFilteredInspectionsController)
	api.Get("/inspections/device/:deviceId", protected, inspectionController.GetDeviceInspectionsController)
	api.Get("/inspections/:id", protected, inspectionController.GetSingleInspectionController)
	api.Post("/inspections", protected, inspectionController.CreateInspectionController)
	api.Put("/inspections/:id", protected, inspectionController.UpdateInspectionController)
	api.Delete("/inspections/:id", protected, inspectionController.DeleteInspectionController)
}

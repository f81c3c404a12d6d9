package routes

import (
	"inspection-backend/search/controllers"

	"github.com/gofiber/fiber/v2"
)

func InitSearchRoutes(app *fiber.App, searchController *controllers.SearchController) {
	api := app.Group("/api/v1")

	api.Get("/search/devices", searchController.SearchDevicesController)
	api.Get("/search/customers", searchController.SearchCustomersController)
}

package routes

import (
	controllers "inspection-backend/customers/controllers"
	"inspection-backend/customers/repositories"
	"inspection-backend/middleware"
	search_repositories "inspection-backend/search/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CustomerInitRoutes(
	app *fiber.App,
	customerRepo repositories.CustomerRepository,
	searchRepo search_repositories.SearchRepositoryInterface,
	db *gorm.DB,
	appCtx *middleware.AppContext,
) {
	customerController := &controllers.CustomerController{
		CustomerRepo: customerRepo,
		SearchRepo:   searchRepo,
		DB:           db,
	}

	api := app.Group("/api/v1")
	protected := middleware.ProtectedRoute(appCtx)

	api.Get("/customers/filtered", protected, customerController.GetFilteredCustomersController)
	api.Get("/customers/:id", protected, customerController.GetSingleCustomerController)
	api.Post("/customers", protected, customerController.CreateCustomerController)
	api.Put("/customers/:id", protected, customerController.UpdateCustomerController)
	api.Delete("/customers/:id", protected, customerController.DeleteCustomerController)
}

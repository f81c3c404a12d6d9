package routes

import (
	customer_repositories "inspection-backend/customers/repositories"
	"inspection-backend/middleware"
	controllers "inspection-backend/reports/controllers"
	"inspection-backend/reports/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func ReportInitRoutes(
	app *fiber.App,
	reportRepo repositories.ReportRepository,
	customerRepo customer_repositories.CustomerRepository,
	asynqClient *asynq.Client,
	db *gorm.DB,
	appCtx *middleware.AppContext,
) {
	reportController := &controllers.ReportController{
		ReportRepo:   reportRepo,
		CustomerRepo: customerRepo,
		AsynqClient:  asynqClient,
		DB:           db,
	}

	api := app.Group("/api/v1")
	protected := middleware.ProtectedRoute(appCtx)

	api.Get("/reports/filtered", protected, reportController.GetFilteredReportsController)
	api.Get("/reports/:id", protected, reportController.GetSingleReportController)
	api.Post("/reports", protected, reportController.RequestReportController)
}

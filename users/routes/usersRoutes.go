package routes

import (
	"inspection-backend/middleware"
	controllers "inspection-backend/users/controllers"
	"inspection-backend/users/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserInitRoutes(
	app *fiber.App,
	userRepo repositories.UserRepository,
	db *gorm.DB,
	appCtx *middleware.AppContext,
) {
	userController := &controllers.UserController{
		UserRepo: userRepo,
		AppCtx:   appCtx,
		DB:       db,
	}

	api := app.Group("/api/v1")
	protected := middleware.ProtectedRoute(appCtx)

	api.Post("/auth/login", userController.LoginController)
	api.Post("/auth/logout", userController.LogoutController)
	api.Post("/users", protected, userController.CreateUserController)
	api.Get("/users", protected, userController.GetAllUsersController)
}

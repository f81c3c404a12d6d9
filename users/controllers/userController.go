package controllers

import (
	"inspection-backend/middleware"
	"inspection-backend/users/repositories"

	"gorm.io/gorm"
)

type UserController struct {
	UserRepo repositories.UserRepository
	AppCtx   *middleware.AppContext
	DB       *gorm.DB
}

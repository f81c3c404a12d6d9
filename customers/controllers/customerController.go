package controllers

import (
	"inspection-backend/customers/repositories"
	search_repositories "inspection-backend/search/repositories"

	"gorm.io/gorm"
)

type CustomerController struct {
	CustomerRepo repositories.CustomerRepository
	SearchRepo   search_repositories.SearchRepositoryInterface
	DB           *gorm.DB
}

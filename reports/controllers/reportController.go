package controllers

import (
	customer_repositories "inspection-backend/customers/repositories"
	"inspection-backend/reports/repositories"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

type ReportController struct {
	ReportRepo   repositories.ReportRepository
	CustomerRepo customer_repositories.CustomerRepository
	AsynqClient  *asynq.Client
	DB           *gorm.DB
}

package main

import (
	"context"

	"inspection-backend/config"
	"inspection-backend/middleware"
	"inspection-backend/token"
	"inspection-backend/utils"

	// Repositories
	customer_repositories "inspection-backend/customers/repositories"
	device_repositories "inspection-backend/devices/repositories"
	inspection_repositories "inspection-backend/inspections/repositories"
	report_repositories "inspection-backend/reports/repositories"
	search_repositories "inspection-backend/search/repositories"
	users_repositories "inspection-backend/users/repositories"

	// Services
	device_services "inspection-backend/devices/services"
	report_services "inspection-backend/reports/services"
	search_services "inspection-backend/search/services"

	// Routes
	customer_routes "inspection-backend/customers/routes"
	device_routes "inspection-backend/devices/routes"
	inspection_routes "inspection-backend/inspections/routes"
	report_routes "inspection-backend/reports/routes"
	search_controllers "inspection-backend/search/controllers"
	search_routes "inspection-backend/search/routes"
	user_routes "inspection-backend/users/routes"

	"inspection-backend/reports/tasks"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.InitLogger()

	config.LoadEnv()

	app := fiber.New()

	middleware.InitCors(app)

	db := config.ConfigureDatabase()
	if err := config.SeedInitialAdminUser(db); err != nil {
		config.Logger.Fatal("Failed to seed initial admin user", zap.Error(err))
	}
	port := config.GetEnvWithDefault("PORT", "8080")
	ctx := context.Background()

	redisAddr := config.GetEnv("REDIS_ADDRESS")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
		config.Logger.Warn("REDIS_ADDRESS not set, using default: localhost:6379")
	}

	redisClient := config.InitRedisServer(ctx)

	// Asynq manages its own Redis connection
	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: config.GetEnv("REDIS_PASSWORD"),
		DB:       0,
	}

	asynqClient := asynq.NewClient(asynqRedisOpt)
	defer asynqClient.Close()

	tokenKey := config.GetEnv("TOKEN_SYMMETRIC_KEY")
	tokenMaker, err := token.NewPasetoMaker(tokenKey)
	if err != nil {
		config.Logger.Fatal("Cannot create token maker", zap.Error(err))
	}

	indexPath := config.GetEnv("BLEVE_INDEX_PATH")
	if indexPath == "" {
		indexPath = "./bleve_data"
		config.Logger.Warn("BLEVE_INDEX_PATH not set, using default: ./bleve_data")
	}

	utils.InitializeMailer()

	app.Static("/public", "./public")

	appCtx := &middleware.AppContext{
		PasetoMaker: tokenMaker,
		Ctx:         ctx,
		RedisClient: redisClient,
	}

	// Repositories
	indexingService := search_services.NewIndexingService(config.Logger, indexPath)
	searchRepo := search_repositories.NewSearchRepository(indexingService)
	customerRepo := customer_repositories.NewCustomerRepository(db)
	deviceRepo := device_repositories.NewDeviceRepository(db)
	inspectionRepo := inspection_repositories.NewInspectionRepository(db)
	reportRepo := report_repositories.NewReportRepository(db)
	userRepo := users_repositories.NewUserRepository(db)

	// Services
	importService := device_services.NewImportService(db, customerRepo, deviceRepo)
	reportService := report_services.NewReportService(reportRepo, deviceRepo, inspectionRepo)

	// Background worker for report generation
	asynqServer := asynq.NewServer(asynqRedisOpt, asynq.Config{Concurrency: 2})
	mux := asynq.NewServeMux()
	reportTaskHandler := tasks.NewReportTaskHandler(reportService)
	mux.HandleFunc(tasks.TypeReportGenerate, reportTaskHandler.HandleReportGenerateTask)
	go func() {
		if err := asynqServer.Run(mux); err != nil {
			config.Logger.Fatal("Asynq worker failed", zap.Error(err))
		}
	}()

	// Routes
	user_routes.UserInitRoutes(app, userRepo, db, appCtx)
	customer_routes.CustomerInitRoutes(app, customerRepo, searchRepo, db, appCtx)
	device_routes.DeviceInitRoutes(app, deviceRepo, importService, searchRepo, db, appCtx)
	inspection_routes.InspectionInitRoutes(app, inspectionRepo, deviceRepo, db, appCtx)
	report_routes.ReportInitRoutes(app, reportRepo, customerRepo, asynqClient, db, appCtx)
	search_routes.InitSearchRoutes(app, search_controllers.NewSearchController(searchRepo))

	// Background cleanup of expired export files and cached listings
	go utils.RunScheduledCleanup(redisClient)

	config.Logger.Info("Server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}

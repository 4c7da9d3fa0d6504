package config

import (
	"os"
	"time"

	"snackstock-api/internal/api/handlers"
	"snackstock-api/internal/api/routes"
	"snackstock-api/internal/middleware"
	"snackstock-api/internal/utils"
	"snackstock-api/internal/utils/storage"
	"snackstock-api/pkg/article"
	"snackstock-api/pkg/groq"
	"snackstock-api/pkg/jwt"
	"snackstock-api/pkg/receipt"
	"snackstock-api/pkg/recipe"
	"snackstock-api/pkg/statistics"
	"snackstock-api/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository. The memory driver swaps every adapter for its in-memory
	// counterpart; the services never know which one they got.
	var (
		userRepository       user.UserRepository
		articleRepository    article.ArticleRepository
		statisticsRepository statistics.StatisticsRepository
	)
	if utils.GetConfig("DB_DRIVER") == "memory" {
		userRepository = user.NewMemoryUserRepository()
		articleRepository = article.NewMemoryArticleRepository()
		statisticsRepository = statistics.NewMemoryStatisticsRepository()
	} else {
		userRepository = user.NewUserRepository(db)
		articleRepository = article.NewArticleRepository(db)
		statisticsRepository = statistics.NewStatisticsRepository(db)
	}

	// Service
	jwtService := jwt.NewJWTService()
	groqService := groq.NewGroqService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	articleService := article.NewArticleService(articleRepository, userRepository)
	statisticsService := statistics.NewStatisticsService(statisticsRepository, userRepository, articleRepository)
	receiptService := receipt.NewReceiptService(groqService, articleRepository, userRepository)
	recipeService := recipe.NewRecipeService(groqService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	articleHandler := handlers.NewArticleHandler(articleService, validator)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsService, validator)
	receiptHandler := handlers.NewReceiptHandler(receiptService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		ArticleHandler:    articleHandler,
		StatisticsHandler: statisticsHandler,
		ReceiptHandler:    receiptHandler,
		RecipeHandler:     recipeHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

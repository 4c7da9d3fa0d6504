package routes

import (
	"snackstock-api/internal/api/handlers"
	"snackstock-api/internal/middleware"
	"snackstock-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	ArticleHandler    handlers.ArticleHandler
	StatisticsHandler handlers.StatisticsHandler
	ReceiptHandler    handlers.ReceiptHandler
	RecipeHandler     handlers.RecipeHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Articles()
	c.Statistics()
	c.Receipts()
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Get("/profile/:id", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetProfile)
		user.Post("/onboarding", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.CompleteOnboarding)
		user.Post("/avatar", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadProfileImage)
	}
}

func (c *Config) Articles() {
	articles := c.App.Group("/api/v1/articles", c.Middleware.AuthMiddleware(c.JWTService))

	articles.Get("/critical", c.ArticleHandler.GetCriticalArticles)

	articles.Post("", c.ArticleHandler.AddArticle)
	articles.Get("", c.ArticleHandler.GetArticles)
	articles.Get("/:id", c.ArticleHandler.GetArticleDetails)
	articles.Put("/:id", c.ArticleHandler.UpdateArticle)
	articles.Delete("/:id", c.ArticleHandler.DeleteArticle)
}

func (c *Config) Statistics() {
	statistics := c.App.Group("/api/v1/statistics", c.Middleware.AuthMiddleware(c.JWTService))
	statistics.Get("", c.StatisticsHandler.GetStatistics)
	statistics.Post("/consumption", c.StatisticsHandler.RecordConsumption)
}

func (c *Config) Receipts() {
	receipts := c.App.Group("/api/v1/receipts", c.Middleware.AuthMiddleware(c.JWTService))
	receipts.Post("/process", c.ReceiptHandler.ProcessReceipt)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Post("/generate", c.RecipeHandler.GenerateRecipes)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

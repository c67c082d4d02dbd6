package main

import (
	"context"
	"log"
	"time"

	"quiz-platform/internal/config"
	"quiz-platform/internal/db"
	"quiz-platform/internal/event"
	"quiz-platform/internal/handlers"
	"quiz-platform/internal/middleware"
	"quiz-platform/internal/repository"
	"quiz-platform/internal/selection"
	"quiz-platform/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	config.Init()
	cfg := config.ServiceConfig

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	db.InitMongo(cfg.MongoURI)
	defer db.Disconnect()
	database := db.Client.Database(cfg.MongoDatabase)

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureIndexes(indexCtx, database); err != nil {
		log.Printf("Warning: could not create indexes: %v", err)
	}
	cancel()

	var publisher *event.Publisher
	if cfg.RabbitURI != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	userRepo := repository.NewUserRepository(database)
	categoryRepo := repository.NewCategoryRepository(database)
	quizRepo := repository.NewQuizRepository(database)
	leaderboardRepo := repository.NewLeaderboardRepository(database)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenExpiryDays)
	userService := service.NewUserService(userRepo, quizRepo, leaderboardRepo, tokens)
	categoryService := service.NewCategoryService(categoryRepo, quizRepo)
	quizService := service.NewQuizService(quizRepo, categoryRepo, userRepo, leaderboardRepo, selection.NewPicker())
	leaderboardService := service.NewLeaderboardService(leaderboardRepo, userRepo, categoryRepo)
	adminService := service.NewAdminService(userRepo, quizRepo, categoryRepo, leaderboardRepo)

	authHandler := handlers.NewAuthHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	quizHandler := handlers.NewQuizHandler(quizService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	adminHandler := handlers.NewAdminHandler(adminService)

	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := middleware.RequireAdmin()

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", func(c *gin.Context) {
			authHandler.Register(c)
			if publisher != nil && c.Writer.Status() == 201 {
				publisher.Publish("user.registered", gin.H{"status": c.Writer.Status()})
			}
		})
		auth.POST("/login", authHandler.Login)
		auth.GET("/profile", requireAuth, authHandler.GetProfile)
		auth.PUT("/profile", requireAuth, authHandler.UpdateProfile)
		auth.POST("/change-password", requireAuth, authHandler.ChangePassword)
		auth.GET("/stats", requireAuth, authHandler.GetStats)
	}

	categories := api.Group("/categories")
	{
		categories.GET("/", categoryHandler.List)
		categories.GET("/:id", categoryHandler.Get)
		categories.GET("/:id/stats", categoryHandler.Stats)
		categories.POST("/", requireAuth, requireAdmin, categoryHandler.Create)
		categories.PUT("/:id", requireAuth, requireAdmin, categoryHandler.Update)
		categories.DELETE("/:id", requireAuth, requireAdmin, func(c *gin.Context) {
			categoryHandler.Delete(c)
			if publisher != nil && c.Writer.Status() == 200 {
				publisher.Publish("category.deleted", gin.H{"id": c.Param("id")})
			}
		})
	}

	quizzes := api.Group("/quizzes")
	{
		quizzes.GET("/", quizHandler.List)
		// Fixed segments registered before /:id so Gin does not swallow them.
		quizzes.GET("/user/quizzes", requireAuth, quizHandler.Mine)
		quizzes.GET("/random/:categoryId", quizHandler.Random)
		quizzes.GET("/history", requireAuth, quizHandler.History)
		quizzes.GET("/:id", quizHandler.Get)
		quizzes.POST("/", requireAuth, func(c *gin.Context) {
			quizHandler.Create(c)
			if publisher != nil && c.Writer.Status() == 201 {
				publisher.Publish("quiz.created", gin.H{"status": c.Writer.Status()})
			}
		})
		quizzes.POST("/:id/submit", requireAuth, func(c *gin.Context) {
			quizHandler.Submit(c)
			if publisher != nil && c.Writer.Status() == 200 {
				publisher.Publish("quiz.submitted", gin.H{"id": c.Param("id")})
			}
		})
		quizzes.PUT("/:id", requireAuth, quizHandler.Update)
		quizzes.DELETE("/:id", requireAuth, func(c *gin.Context) {
			quizHandler.Delete(c)
			if publisher != nil && c.Writer.Status() == 200 {
				publisher.Publish("quiz.deleted", gin.H{"id": c.Param("id")})
			}
		})
	}

	leaderboard := api.Group("/leaderboard")
	{
		leaderboard.GET("/category/:categoryId", leaderboardHandler.Category)
		leaderboard.GET("/global", leaderboardHandler.Global)
		leaderboard.GET("/stats", leaderboardHandler.Stats)
		leaderboard.GET("/me", requireAuth, leaderboardHandler.MyScores)
	}

	admin := api.Group("/admin", requireAuth, requireAdmin)
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.PUT("/users/:userId/role", adminHandler.UpdateUserRole)
		admin.DELETE("/users/:userId", func(c *gin.Context) {
			adminHandler.DeleteUser(c)
			if publisher != nil && c.Writer.Status() == 200 {
				publisher.Publish("user.deleted", gin.H{"id": c.Param("userId")})
			}
		})
		admin.GET("/dashboard", adminHandler.Dashboard)
		admin.GET("/moderation/flagged", adminHandler.FlaggedQuizzes)
		admin.PUT("/moderation/quizzes/:quizId", func(c *gin.Context) {
			adminHandler.ModerateQuiz(c)
			if publisher != nil && c.Writer.Status() == 200 {
				publisher.Publish("quiz.moderated", gin.H{"id": c.Param("quizId")})
			}
		})
	}

	log.Printf("Quiz platform listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

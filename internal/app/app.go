package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portalHTTP "dawah-portal/internal/controller/http"
	"dawah-portal/internal/repo/persistent"
	"dawah-portal/internal/seed"
	"dawah-portal/internal/usecase"
	"dawah-portal/pkg/config"
	"dawah-portal/pkg/database"
	"dawah-portal/pkg/jwt"
	"dawah-portal/pkg/logger"
	"dawah-portal/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "dawah-portal/docs" // Swagger docs
)

type App struct {
	cfg        *config.Config
	log        *logger.Logger
	db         *gorm.DB
	jwtService *jwt.Service
	httpServer *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.New(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	if cfg.DemoAdminLogin {
		log.Warn("Demo admin login is enabled (DEMO_ADMIN_LOGIN); do not run production with it")
	}

	return &App{
		cfg:        cfg,
		log:        log,
		db:         db,
		jwtService: jwtService,
	}, nil
}

func (a *App) Run() error {
	// Seeding failures leave the portal empty but serving
	if err := seed.Run(a.db); err != nil {
		a.log.Error("Failed to seed database: %v (continuing without seed data)", err)
	}

	articleRepo := persistent.NewArticleRepository(a.db)
	videoRepo := persistent.NewVideoRepository(a.db)
	questionRepo := persistent.NewQuestionRepository(a.db)
	categoryRepo := persistent.NewCategoryRepository(a.db)
	userRepo := persistent.NewUserRepository(a.db)

	articleUseCase := usecase.NewArticleUseCase(articleRepo, a.log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, a.log)
	qnaUseCase := usecase.NewQnAUseCase(questionRepo, a.log)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, a.log)
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.cfg.DemoAdminLogin, a.log)

	articleHandler := portalHTTP.NewArticleHandler(articleUseCase)
	videoHandler := portalHTTP.NewVideoHandler(videoUseCase)
	questionHandler := portalHTTP.NewQuestionHandler(qnaUseCase)
	categoryHandler := portalHTTP.NewCategoryHandler(categoryUseCase)
	authHandler := portalHTTP.NewAuthHandler(authUseCase)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.List)
			articles.GET("/:id", articleHandler.Get)
			articles.GET("/category/:category", articleHandler.ListByCategory)
			articles.POST("", articleHandler.Create)
			articles.PUT("/:id", articleHandler.Update)
			articles.DELETE("/:id", articleHandler.Delete)
		}

		videos := api.Group("/videos")
		{
			videos.GET("", videoHandler.List)
			videos.GET("/:id", videoHandler.Get)
			videos.GET("/category/:category", videoHandler.ListByCategory)
			videos.POST("", videoHandler.Create)
			videos.PUT("/:id", videoHandler.Update)
			videos.DELETE("/:id", videoHandler.Delete)
		}

		questions := api.Group("/questions")
		{
			questions.GET("", questionHandler.List)
			questions.GET("/:id", questionHandler.Get)
			questions.GET("/category/:category", questionHandler.ListByCategory)
			questions.POST("", questionHandler.Create)
			questions.PUT("/:id", questionHandler.Update)
			questions.POST("/:id/answers", questionHandler.AddAnswer)
			questions.PUT("/:id/answers/:answerId/accept", questionHandler.AcceptAnswer)
			questions.DELETE("/:id", questionHandler.Delete)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.Get)

			// Category management is Admin only
			admin := categories.Group("")
			admin.Use(middleware.AuthMiddleware(a.jwtService), middleware.RequireRole("Admin"))
			{
				admin.POST("", categoryHandler.Create)
				admin.PUT("/:id", categoryHandler.Update)
				admin.DELETE("/:id", categoryHandler.Delete)
			}
		}

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Dawah portal starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down dawah portal...")
}

func (a *App) Shutdown() error {
	// Give in-flight requests 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Dawah portal exited")
	return nil
}

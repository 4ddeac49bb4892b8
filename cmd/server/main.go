package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ejikes/blogApi/internal/config"
	"github.com/ejikes/blogApi/internal/handler"
	"github.com/ejikes/blogApi/internal/infrastructure/database"
	"github.com/ejikes/blogApi/internal/logger"
	"github.com/ejikes/blogApi/internal/metrics"
	"github.com/ejikes/blogApi/internal/middleware"
	"github.com/ejikes/blogApi/internal/repository"
	"github.com/ejikes/blogApi/internal/service"
	"github.com/ejikes/blogApi/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Init(cfg.LogLevel)

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	articleRepo := repository.NewPostgresArticleRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	articleService := service.NewArticleService(articleRepo)
	authService := service.NewAuthService(userRepo, []byte(cfg.JWTSecret), cfg.JWTExpiry, cfg.BcryptCost)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService, v, cfg.DefaultPageSize, cfg.MaxPageSize)
	authHandler := handler.NewAuthHandler(authService, v)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middleware.Auth([]byte(cfg.JWTSecret))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/signup", authHandler.Signup)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", auth, authHandler.Me)
		}

		blogs := v1.Group("/blogs")
		{
			blogs.GET("", articleHandler.ListPublished)
			blogs.GET("/search", articleHandler.Search)
			blogs.GET("/:id", articleHandler.Get)

			blogs.POST("", auth, articleHandler.Create)
			blogs.GET("/me", auth, articleHandler.ListMine)
			blogs.GET("/me/stats", auth, articleHandler.Stats)
			blogs.GET("/:id/edit", auth, articleHandler.GetOwned)
			blogs.POST("/:id/publish", auth, articleHandler.Publish)
			blogs.PUT("/:id", auth, articleHandler.Update)
			blogs.DELETE("/:id", auth, articleHandler.Delete)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

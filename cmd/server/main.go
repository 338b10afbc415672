package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/Navin2k4/UrbanUplift-sub000/docs" // swagger docs

	"github.com/Navin2k4/UrbanUplift-sub000/internal/auth"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/cache"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/config"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/db"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/handler"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/mailer"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/ml"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/model"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/repository"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/router"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/service"
)

// @title UrbanUplift API
// @version 1.0
// @description Civic issue reporting API with role-based authentication and AI-assisted issue classification.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Report{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	reportRepo := repository.NewReportRepository(gormDB)

	// Initialize collaborators
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	cookies := auth.NewCookieHelper(cfg.IsProduction())
	classifier := ml.NewClient(cfg.HuggingFaceAPIKey, cfg.SimilarityURL, cfg.ZeroShotURL, cfg.ImageModelURL)
	mailSender := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailAddress, cfg.EmailPassword, cfg.ClientURL)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	reportService := service.NewReportService(reportRepo, userRepo, cacheClient, mailSender)
	classifyService := service.NewClassifyService(classifier)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cookies)
	reportHandler := handler.NewReportHandler(reportService)
	classifyHandler := handler.NewClassifyHandler(classifyService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		reportHandler,
		classifyHandler,
	)

	addr := ":" + cfg.ServerPort
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	// Block until a shutdown signal, then close everything we opened.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := db.Close(gormDB); err != nil {
		log.Printf("close database: %v", err)
	}
	if err := cacheClient.Close(); err != nil {
		log.Printf("close cache: %v", err)
	}
}

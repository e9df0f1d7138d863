package main

import (
	"log"
	"net/http"
	"os"

	_ "skytails/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"skytails/internal/auth"
	"skytails/internal/cache"
	"skytails/internal/config"
	"skytails/internal/db"
	"skytails/internal/handler"
	"skytails/internal/model"
	"skytails/internal/repository"
	"skytails/internal/router"
	"skytails/internal/service"
)

// @title SkyTails API
// @version 1.0
// @description Pet-savings onboarding and dashboard API with session-based authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.SignupEvent{},
			&model.Plan{},
			&model.Pet{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Pet{},
		&model.Plan{},
		&model.SignupEvent{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	cacheClient := cache.New(redisClient)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	petRepo := repository.NewPetRepository(gormDB)
	planRepo := repository.NewPlanRepository(gormDB)
	onboardingRepo := repository.NewOnboardingRepository(gormDB)
	signupEventRepo := repository.NewSignupEventRepository(gormDB)

	// Session components
	tokenService := auth.NewTokenService(cfg.SessionSecret)
	sessionStore := auth.NewSessionStore(redisClient)

	// Services
	authService := service.NewAuthService(userRepo, sessionStore, tokenService)
	onboardingService := service.NewOnboardingService(onboardingRepo, sessionStore, tokenService, signupEventRepo, cacheClient)
	dashboardService := service.NewDashboardService(petRepo, planRepo, cacheClient)

	// Handlers
	onboardingHandler := handler.NewOnboardingHandler(onboardingService)
	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	router.Register(e, cfg, authService, onboardingHandler, authHandler, dashboardHandler)

	addr := ":" + cfg.ServerPort
	err = e.Start(addr)

	// Flush any queued signup audit events before exiting.
	onboardingService.Close()

	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

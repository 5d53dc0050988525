package app

import (
	"go-vms/internal/auth"
	"go-vms/internal/employee"
	"go-vms/internal/location"
	"go-vms/internal/middleware"
	"go-vms/internal/notification"
	"go-vms/internal/visitor"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	mailer notification.Mailer,
) error {
	router.Use(middleware.RequestID())

	// --- Repositories ---
	authRepo := auth.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	locationRepo := location.NewRepository(db)
	visitorRepo := visitor.NewRepository(db)

	// --- Services ---
	authService := auth.NewService(authRepo, rdb)
	employeeService := employee.NewService(employeeRepo)
	locationService := location.NewService(locationRepo)
	visitorService := visitor.NewService(visitorRepo, employeeRepo, locationService, mailer)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	locationHandler := location.NewHandler(locationService)
	visitorHandler := visitor.NewHandler(visitorService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler)
		location.RegisterRoutes(api, locationHandler)
		visitor.RegisterRoutes(api, visitorHandler)
	}

	return nil
}

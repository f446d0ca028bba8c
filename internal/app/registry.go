package app

import (
	"database/sql"

	"github.com/Netosantos999/controle-ponto-app/internal/auth"
	"github.com/Netosantos999/controle-ponto-app/internal/employee"
	"github.com/Netosantos999/controle-ponto-app/internal/holiday"
	"github.com/Netosantos999/controle-ponto-app/internal/messaging/kafka"
	"github.com/Netosantos999/controle-ponto-app/internal/middleware"
	"github.com/Netosantos999/controle-ponto-app/internal/punch"
	"github.com/Netosantos999/controle-ponto-app/internal/rbac"
	"github.com/Netosantos999/controle-ponto-app/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	punchRepo := punch.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo)
	employeeService := employee.NewService(employeeRepo, rdb)
	punchService := punch.NewServiceWithOutbox(db, punchRepo, outboxRepo, rdb)
	holidayService := holiday.NewService(holidayRepo, rdb)
	reportService := report.NewService(punchService, employeeService, holidayService, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	punchHandler := punch.NewHandler(punchService)
	holidayHandler := holiday.NewHandler(holidayService)
	reportHandler := report.NewHandler(reportService)

	// --- Global middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		punch.RegisterRoutes(api, punchHandler, rbacService, rdb)
		holiday.RegisterRoutes(api, holidayHandler, rbacService)
		report.RegisterRoutes(api, reportHandler, rbacService)
	}

	return nil
}

package punch

import (
	"github.com/Netosantos999/controle-ponto-app/internal/middleware"
	"github.com/Netosantos999/controle-ponto-app/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, rdb *redis.Client) {
	punches := r.Group("/punches")
	punches.Use(middleware.AuthMiddleware())
	{
		record := middleware.RBACAuthorize(rbacService, "punch", "create")
		punches.POST("", record, middleware.IdempotencyMiddleware(rdb), h.Record)
		punches.POST("/standard-day", record, middleware.IdempotencyMiddleware(rdb), h.RecordStandardDay)
		punches.POST("/night-watch", record, middleware.IdempotencyMiddleware(rdb), h.RecordNightWatch)
		punches.POST("/day-watch", record, middleware.IdempotencyMiddleware(rdb), h.RecordDayWatch)

		punches.GET("/employee/:id", middleware.RBACAuthorize(rbacService, "punch", "read"), h.ListByEmployee)
		punches.PUT("/:id", middleware.RBACAuthorize(rbacService, "punch", "write"), h.Update)
		punches.DELETE("/:id", middleware.RBACAuthorize(rbacService, "punch", "write"), h.Delete)
	}
}

package employee

import (
	"github.com/Netosantos999/controle-ponto-app/internal/middleware"
	"github.com/Netosantos999/controle-ponto-app/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.RBACAuthorize(rbacService, "employee", "read"), h.GetAll)
		employees.GET("/options", middleware.RBACAuthorize(rbacService, "employee", "read"), h.GetOptions)
		employees.GET("/:id", middleware.RBACAuthorize(rbacService, "employee", "read"), h.GetByID)
		employees.POST("", middleware.RBACAuthorize(rbacService, "employee", "write"), h.Create)
		employees.PUT("/:id", middleware.RBACAuthorize(rbacService, "employee", "write"), h.Update)
		employees.DELETE("/:id", middleware.RBACAuthorize(rbacService, "employee", "write"), h.Delete)
	}
}

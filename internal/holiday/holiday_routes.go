package holiday

import (
	"github.com/Netosantos999/controle-ponto-app/internal/middleware"
	"github.com/Netosantos999/controle-ponto-app/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	holidays := r.Group("/holidays")
	holidays.Use(middleware.AuthMiddleware())
	{
		holidays.GET("", middleware.RBACAuthorize(rbacService, "holiday", "read"), h.ListYear)
		holidays.GET("/custom", middleware.RBACAuthorize(rbacService, "holiday", "read"), h.ListCustom)
		holidays.POST("/custom", middleware.RBACAuthorize(rbacService, "holiday", "write"), h.AddCustom)
		holidays.DELETE("/custom/:id", middleware.RBACAuthorize(rbacService, "holiday", "write"), h.RemoveCustom)
		holidays.GET("/ignored", middleware.RBACAuthorize(rbacService, "holiday", "read"), h.ListIgnored)
		holidays.POST("/ignored", middleware.RBACAuthorize(rbacService, "holiday", "write"), h.AddIgnored)
		holidays.DELETE("/ignored/:id", middleware.RBACAuthorize(rbacService, "holiday", "write"), h.RemoveIgnored)
	}
}

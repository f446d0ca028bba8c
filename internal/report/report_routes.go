package report

import (
	"github.com/Netosantos999/controle-ponto-app/internal/middleware"
	"github.com/Netosantos999/controle-ponto-app/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		read := middleware.RBACAuthorize(rbacService, "report", "read")
		reports.GET("/worked-hours/:id", read, h.WorkedHours)
		reports.GET("/overtime", read, h.OvertimeAll)
		reports.GET("/overtime/:id", read, h.Overtime)
		reports.GET("/overtime/:id/summary", read, h.OvertimeSummary)
		reports.GET("/absences", read, h.Absences)
	}
}

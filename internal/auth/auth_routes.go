package auth

import (
	"github.com/Netosantos999/controle-ponto-app/internal/middleware"
	"github.com/Netosantos999/controle-ponto-app/internal/rbac"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	authGroup := r.Group("/auth")
	{
		// Brute force protection on the credential endpoints.
		loginLimiter := middleware.RateLimitByIP(rate.Limit(1), 5)

		authGroup.POST("/login", loginLimiter, h.Login)
		authGroup.POST("/refresh", loginLimiter, h.Refresh)
		authGroup.POST("/logout", h.Logout)

		authGroup.GET("/me", middleware.AuthMiddleware(), h.Me)
		authGroup.POST("/register",
			middleware.AuthMiddleware(),
			middleware.RBACAuthorize(rbacService, "user", "write"),
			h.Register,
		)
	}
}

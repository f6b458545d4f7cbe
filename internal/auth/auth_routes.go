package auth

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/shreyansh404/attendanceManagment/internal/middleware"
	"github.com/shreyansh404/attendanceManagment/internal/rbac"
	"github.com/shreyansh404/attendanceManagment/internal/token"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, tokens *token.Manager, rbacService rbac.Service) {
	authGroup := r.Group("/auth")
	{
		// unauthenticated surface, throttled per source IP
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Limit(5), 10), h.Login)
		authGroup.POST("/register-manager", middleware.RateLimitByIP(rate.Limit(1), 5), h.RegisterManager)

		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware(tokens))
		{
			protected.POST("/register-staff",
				middleware.RBACAuthorize(rbacService, "users", "register_staff"), h.RegisterStaff)
			protected.GET("/user", h.GetMe)
		}
	}
}

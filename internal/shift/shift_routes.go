package shift

import (
	"github.com/gin-gonic/gin"

	"github.com/shreyansh404/attendanceManagment/internal/middleware"
	"github.com/shreyansh404/attendanceManagment/internal/rbac"
	"github.com/shreyansh404/attendanceManagment/internal/token"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, tokens *token.Manager, rbacService rbac.Service) {
	shifts := r.Group("/shifts")
	shifts.Use(middleware.AuthMiddleware(tokens))
	{
		shifts.POST("", middleware.RBACAuthorize(rbacService, "shifts", "assign"), h.Assign)
		shifts.GET("/me", middleware.RBACAuthorize(rbacService, "shifts", "read"), h.GetCurrent)
	}
}

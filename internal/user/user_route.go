package user

import (
	"github.com/gin-gonic/gin"

	"github.com/shreyansh404/attendanceManagment/internal/middleware"
	"github.com/shreyansh404/attendanceManagment/internal/rbac"
	"github.com/shreyansh404/attendanceManagment/internal/token"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, tokens *token.Manager, rbacService rbac.Service) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(tokens))
	{
		users.GET("/me", h.GetProfile)
		users.GET("/staff", middleware.RBACAuthorize(rbacService, "users", "list_staff"), h.ListStaff)
	}
}

package attendance

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/shreyansh404/attendanceManagment/internal/middleware"
	"github.com/shreyansh404/attendanceManagment/internal/rbac"
	"github.com/shreyansh404/attendanceManagment/internal/token"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, tokens *token.Manager, rbacService rbac.Service, rdb *redis.Client) {
	attendances := r.Group("/attendance")
	attendances.Use(middleware.AuthMiddleware(tokens))
	{
		attendances.POST("",
			middleware.RBACAuthorize(rbacService, "attendance", "create"),
			middleware.RateLimitByUser(rate.Limit(1), 3),
			middleware.Idempotency(rdb),
			h.CheckIn,
		)
		attendances.GET("/me", h.ListMine)
	}
}

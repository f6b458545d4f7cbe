package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shreyansh404/attendanceManagment/internal/shared/apperror"
	"github.com/shreyansh404/attendanceManagment/internal/shared/contextutil"
	"github.com/shreyansh404/attendanceManagment/internal/shared/response"
	"github.com/shreyansh404/attendanceManagment/internal/token"
)

// AuthMiddleware verifies the bearer token and stores the verified claims in
// the gin context. The database-backed actor lookup happens in the services,
// so a deleted user with a live token still fails downstream.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found", nil)
			c.Abort()
			return
		}

		claims, err := tokens.VerifyToken(tokenString)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, token.ErrTokenExpired) {
				message = "Token has expired"
			}
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, message, nil)
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("user_id", claims.UserID)

		ctx := c.Request.Context()
		ctx = contextutil.WithUserID(ctx, claims.UserID)
		ctx = contextutil.WithLogger(ctx,
			contextutil.GetLogger(ctx, zap.L()).With(zap.String("user_id", claims.UserID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

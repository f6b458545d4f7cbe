package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shreyansh404/attendanceManagment/internal/attendance"
	"github.com/shreyansh404/attendanceManagment/internal/auth"
	"github.com/shreyansh404/attendanceManagment/internal/config"
	"github.com/shreyansh404/attendanceManagment/internal/guard"
	"github.com/shreyansh404/attendanceManagment/internal/messaging/kafka"
	"github.com/shreyansh404/attendanceManagment/internal/middleware"
	"github.com/shreyansh404/attendanceManagment/internal/rbac"
	"github.com/shreyansh404/attendanceManagment/internal/shared/counter"
	"github.com/shreyansh404/attendanceManagment/internal/shift"
	"github.com/shreyansh404/attendanceManagment/internal/storage"
	"github.com/shreyansh404/attendanceManagment/internal/token"
	"github.com/shreyansh404/attendanceManagment/internal/user"
)

// registerModules wires repositories, services and handlers, then mounts
// every module's routes under the given group.
func registerModules(
	r *gin.RouterGroup,
	cfg *config.Config,
	db *gorm.DB,
	rdb *redis.Client,
	media storage.MediaSink,
	logger *zap.Logger,
) error {
	r.Use(middleware.ContextLogger(logger))

	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	tokens := token.NewManager(cfg.Auth.PrivateKey, cfg.Auth.PublicKey, cfg.Auth.TokenTTL, cfg.Auth.BcryptCost)

	userRepo := user.NewRepository(db)
	shiftRepo := shift.NewRepository(db)
	attendanceRepo := attendance.NewRepository(db)
	counterRepo := counter.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	actorGuard := guard.New(userRepo)

	userService := user.NewService(userRepo, rdb, logger)
	authService := auth.NewService(userRepo, userService, actorGuard, tokens, counterRepo, cfg.Auth.ManagerSecret, logger)
	shiftService := shift.NewService(db, shiftRepo, userRepo, actorGuard, outboxRepo, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, shiftRepo, actorGuard, media, outboxRepo, logger)

	auth.RegisterRoutes(r, auth.NewHandler(authService), tokens, rbacService)
	user.RegisterRoutes(r, user.NewHandler(userService), tokens, rbacService)
	shift.RegisterRoutes(r, shift.NewHandler(shiftService), tokens, rbacService)
	attendance.RegisterRoutes(r, attendance.NewHandler(attendanceService), tokens, rbacService, rdb)

	return nil
}

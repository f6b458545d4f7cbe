package user

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/shreyansh404/attendanceManagment/internal/shared/apperror"
	"github.com/shreyansh404/attendanceManagment/internal/shared/contextutil"
	usererrors "github.com/shreyansh404/attendanceManagment/internal/user/errors"
)

const staffCacheKeyPrefix = "users:staff:"

const staffCacheTTL = 5 * time.Minute

func StaffCacheKey(managerID string) string {
	return staffCacheKeyPrefix + managerID
}

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetProfile(ctx context.Context, userID string) (UserResponse, error)
	ListStaff(ctx context.Context, actorEmail string) ([]UserResponse, error)
	InvalidateStaffCache(ctx context.Context, managerID string)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetProfile(ctx context.Context, userID string) (UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	return ToResponse(u), nil
}

// ListStaff serves a manager's staff from redis when possible; concurrent
// cache misses for the same manager share one database read.
func (s *service) ListStaff(ctx context.Context, actorEmail string) ([]UserResponse, error) {
	actor, err := s.repo.GetByEmail(ctx, actorEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrUnauthorized
		}
		return nil, err
	}
	if actor.Role != RoleManager {
		return nil, apperror.ErrForbidden
	}

	managerID := actor.ID.String()
	key := StaffCacheKey(managerID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var resp []UserResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		rows, err := s.repo.ListStaffByManager(ctx, managerID)
		if err != nil {
			return nil, err
		}

		resp := make([]UserResponse, len(rows))
		for i := range rows {
			resp[i] = ToResponse(&rows[i])
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, key, payload, staffCacheTTL).Err(); err != nil {
					contextutil.GetLogger(ctx, s.logger).Warn("staff cache write failed",
						zap.String("manager_id", managerID), zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]UserResponse), nil
}

func (s *service) InvalidateStaffCache(ctx context.Context, managerID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, StaffCacheKey(managerID)).Err(); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("staff cache invalidation failed",
			zap.String("manager_id", managerID), zap.Error(err))
	}
}

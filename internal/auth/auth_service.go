package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	autherrors "github.com/shreyansh404/attendanceManagment/internal/auth/errors"
	"github.com/shreyansh404/attendanceManagment/internal/guard"
	"github.com/shreyansh404/attendanceManagment/internal/shared/contextutil"
	"github.com/shreyansh404/attendanceManagment/internal/shared/counter"
	"github.com/shreyansh404/attendanceManagment/internal/token"
	"github.com/shreyansh404/attendanceManagment/internal/user"
	usererrors "github.com/shreyansh404/attendanceManagment/internal/user/errors"
)

const staffNumberCounter = "staff_number"

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	RegisterStaff(ctx context.Context, actorEmail string, req RegisterStaffRequest) (user.UserResponse, error)
	RegisterManager(ctx context.Context, req RegisterManagerRequest) (user.UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	GetMe(ctx context.Context, actorEmail string) (user.UserResponse, error)
}

type service struct {
	users         user.Repository
	userService   user.Service
	guard         *guard.Guard
	tokens        *token.Manager
	counters      counter.Repository
	managerSecret string
	logger        *zap.Logger
}

func NewService(
	users user.Repository,
	userService user.Service,
	g *guard.Guard,
	tokens *token.Manager,
	counters counter.Repository,
	managerSecret string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		users:         users,
		userService:   userService,
		guard:         g,
		tokens:        tokens,
		counters:      counters,
		managerSecret: managerSecret,
		logger:        l,
	}
}

// RegisterStaff creates a staff account owned by the calling manager. The
// email uniqueness check races with concurrent registrations, so the unique
// index on users.email stays the final arbiter.
func (s *service) RegisterStaff(ctx context.Context, actorEmail string, req RegisterStaffRequest) (user.UserResponse, error) {
	actor, err := s.guard.CurrentActor(ctx, actorEmail)
	if err != nil {
		return user.UserResponse{}, err
	}
	if err := s.guard.RequireManager(actor); err != nil {
		return user.UserResponse{}, err
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return user.UserResponse{}, err
	}
	if role == user.RoleManager {
		return user.UserResponse{}, autherrors.ErrCannotCreateManager
	}

	if req.Password != req.ConfirmPassword {
		return user.UserResponse{}, autherrors.ErrPasswordMismatch
	}

	if err := s.ensureEmailFree(ctx, req.Email); err != nil {
		return user.UserResponse{}, err
	}

	hashed, err := s.tokens.HashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, err
	}

	seq, err := s.counters.GetNextValue(ctx, actor.ID.String(), staffNumberCounter)
	if err != nil {
		return user.UserResponse{}, err
	}

	u := &user.User{
		Username:    req.Username,
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    hashed,
		Role:        user.RoleStaff,
		ManagerID:   &actor.ID,
		StaffNumber: fmt.Sprintf("EMP-%04d", seq),
	}
	if err := u.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.users.Create(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return user.UserResponse{}, usererrors.ErrUserAlreadyExists
		}
		return user.UserResponse{}, err
	}

	s.userService.InvalidateStaffCache(ctx, actor.ID.String())

	contextutil.GetLogger(ctx, s.logger).Info("staff registered",
		zap.String("staff_id", u.ID.String()),
		zap.String("manager_id", actor.ID.String()),
	)

	return user.ToResponse(u), nil
}

// RegisterManager is self-service but gated by the shared manager secret.
func (s *service) RegisterManager(ctx context.Context, req RegisterManagerRequest) (user.UserResponse, error) {
	role, err := user.ParseRole(req.Role)
	if err != nil {
		return user.UserResponse{}, err
	}
	if role != user.RoleManager {
		return user.UserResponse{}, autherrors.ErrManagerRoleRequired
	}

	if req.ManagerSecretKey != s.managerSecret {
		return user.UserResponse{}, autherrors.ErrInvalidManagerSecret
	}

	if req.Password != req.ConfirmPassword {
		return user.UserResponse{}, autherrors.ErrPasswordMismatch
	}

	if err := s.ensureEmailFree(ctx, req.Email); err != nil {
		return user.UserResponse{}, err
	}

	hashed, err := s.tokens.HashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, err
	}

	u := &user.User{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashed,
		Role:     user.RoleManager,
	}
	if err := u.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.users.Create(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return user.UserResponse{}, usererrors.ErrUserAlreadyExists
		}
		return user.UserResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("manager registered", zap.String("manager_id", u.ID.String()))

	return user.ToResponse(u), nil
}

// Login deliberately reports one error for an unknown email and a wrong
// password, so the endpoint cannot be used to enumerate accounts.
func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}

	if !s.tokens.VerifyPassword(req.Password, u.Password) {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.IssueToken(u.Email, string(u.Role), u.ID.String())
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{AccessToken: accessToken}, nil
}

func (s *service) GetMe(ctx context.Context, actorEmail string) (user.UserResponse, error) {
	actor, err := s.guard.CurrentActor(ctx, actorEmail)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(actor), nil
}

func (s *service) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return usererrors.ErrUserAlreadyExists
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

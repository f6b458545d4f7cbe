package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	autherrors "github.com/shreyansh404/attendanceManagment/internal/auth/errors"
	"github.com/shreyansh404/attendanceManagment/internal/user"
)

type stubService struct {
	registerStaffFn   func(ctx context.Context, actorEmail string, req RegisterStaffRequest) (user.UserResponse, error)
	registerManagerFn func(ctx context.Context, req RegisterManagerRequest) (user.UserResponse, error)
	loginFn           func(ctx context.Context, req LoginRequest) (LoginResponse, error)
	getMeFn           func(ctx context.Context, actorEmail string) (user.UserResponse, error)
}

func (s *stubService) RegisterStaff(ctx context.Context, actorEmail string, req RegisterStaffRequest) (user.UserResponse, error) {
	return s.registerStaffFn(ctx, actorEmail, req)
}

func (s *stubService) RegisterManager(ctx context.Context, req RegisterManagerRequest) (user.UserResponse, error) {
	return s.registerManagerFn(ctx, req)
}

func (s *stubService) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	return s.loginFn(ctx, req)
}

func (s *stubService) GetMe(ctx context.Context, actorEmail string) (user.UserResponse, error) {
	return s.getMeFn(ctx, actorEmail)
}

func newTestRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc)

	r.POST("/auth/login", h.Login)
	r.POST("/auth/register-manager", h.RegisterManager)
	r.POST("/auth/register-staff", func(c *gin.Context) {
		c.Set("email", "boss@example.com")
		h.RegisterStaff(c)
	})
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandler(t *testing.T) {
	svc := &stubService{
		loginFn: func(ctx context.Context, req LoginRequest) (LoginResponse, error) {
			assert.Equal(t, "boss@example.com", req.Email)
			return LoginResponse{AccessToken: "signed-token"}, nil
		},
	}

	w := postJSON(t, newTestRouter(svc), "/auth/login", LoginRequest{
		Email:    "boss@example.com",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "signed-token")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "access_token=signed-token")
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	svc := &stubService{
		loginFn: func(ctx context.Context, req LoginRequest) (LoginResponse, error) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		},
	}

	w := postJSON(t, newTestRouter(svc), "/auth/login", LoginRequest{
		Email:    "boss@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect email or password")
}

func TestLoginHandlerRejectsMalformedBody(t *testing.T) {
	svc := &stubService{
		loginFn: func(ctx context.Context, req LoginRequest) (LoginResponse, error) {
			t.Fatal("service must not be called")
			return LoginResponse{}, nil
		},
	}

	w := postJSON(t, newTestRouter(svc), "/auth/login", gin.H{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterStaffHandler(t *testing.T) {
	svc := &stubService{
		registerStaffFn: func(ctx context.Context, actorEmail string, req RegisterStaffRequest) (user.UserResponse, error) {
			assert.Equal(t, "boss@example.com", actorEmail)
			return user.UserResponse{Email: req.Email, Role: "staff", StaffNumber: "EMP-0001"}, nil
		},
	}

	w := postJSON(t, newTestRouter(svc), "/auth/register-staff", RegisterStaffRequest{
		Username:        "jdoe",
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Role:            "staff",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "EMP-0001")
}

package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/shreyansh404/attendanceManagment/internal/shared/apperror"
	"github.com/shreyansh404/attendanceManagment/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func writeBindingError(c *gin.Context, err error) {
	if vErrs, ok := err.(validator.ValidationErrors); ok {
		writeServiceError(c, apperror.MapValidationError(vErrs))
		return
	}
	response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", nil)
}

// RegisterStaff creates a staff account under the calling manager.
func (h *Handler) RegisterStaff(c *gin.Context) {
	var req RegisterStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	resp, err := h.service.RegisterStaff(c.Request.Context(), c.GetString("email"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// RegisterManager creates a manager account, gated by the shared secret.
func (h *Handler) RegisterManager(c *gin.Context) {
	var req RegisterManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	resp, err := h.service.RegisterManager(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	// cookie mirrors the body so browser clients need no token plumbing
	c.SetCookie("access_token", resp.AccessToken, 0, "/", "", false, true)

	response.Success(c, http.StatusOK, resp)
}

// GetMe returns the profile behind the presented token.
func (h *Handler) GetMe(c *gin.Context) {
	resp, err := h.service.GetMe(c.Request.Context(), c.GetString("email"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

package shift

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

// Assign sets a staff member's shift. Created rows answer 201, replaced
// rows answer 200.
func (h *Handler) Assign(c *gin.Context) {
	var req AssignShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if vErrs, ok := err.(validator.ValidationErrors); ok {
			writeServiceError(c, apperror.MapValidationError(vErrs))
			return
		}
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Assign(c.Request.Context(), c.GetString("email"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	status := http.StatusOK
	if resp.Outcome == OutcomeCreated {
		status = http.StatusCreated
	}

	response.Success(c, status, resp)
}

// GetCurrent returns the calling user's shift.
func (h *Handler) GetCurrent(c *gin.Context) {
	resp, err := h.service.GetCurrent(c.Request.Context(), c.GetString("email"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

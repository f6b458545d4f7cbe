package attendance

import (
	"net/http"

	"github.com/gin-gonic/gin"

	attendanceerrors "github.com/shreyansh404/attendanceManagment/internal/attendance/errors"
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

// CheckIn accepts a multipart form with the photo under "image".
func (h *Handler) CheckIn(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		writeServiceError(c, attendanceerrors.ErrMissingImage)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeServiceError(c, attendanceerrors.ErrMissingImage)
		return
	}
	defer file.Close()

	resp, err := h.service.CheckIn(c.Request.Context(), c.GetString("email"), CheckInRequest{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Image:       file,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ListMine returns the caller's own attendance history.
func (h *Handler) ListMine(c *gin.Context) {
	resp, err := h.service.ListMine(c.Request.Context(), c.GetString("email"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

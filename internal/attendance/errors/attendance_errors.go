package attendanceerrors

import (
	"net/http"

	"github.com/shreyansh404/attendanceManagment/internal/shared/apperror"
)

var (
	ErrNoShift = apperror.New(
		apperror.CodeNotFound,
		"No shift assigned, cannot check in",
		http.StatusNotFound,
	)

	ErrOutsideWindow = apperror.New(
		apperror.CodeOutsideWindow,
		"Check-in is outside the allowed shift window",
		http.StatusForbidden,
	)

	ErrAlreadyMarked = apperror.New(
		apperror.CodeConflict,
		"Attendance already marked for today",
		http.StatusConflict,
	)

	ErrMissingImage = apperror.New(
		apperror.CodeInvalidInput,
		"A check-in photo is required",
		http.StatusBadRequest,
	)
)

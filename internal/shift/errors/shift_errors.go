package shifterrors

import (
	"net/http"

	"github.com/shreyansh404/attendanceManagment/internal/shared/apperror"
)

var (
	ErrInvalidShift = apperror.New(
		apperror.CodeInvalidInput,
		"Shift does not match any allowed shift window",
		http.StatusBadRequest,
	)

	ErrStaffNotFound = apperror.New(
		apperror.CodeNotFound,
		"Staff member not found",
		http.StatusNotFound,
	)

	ErrShiftAlreadyAssigned = apperror.New(
		apperror.CodeConflict,
		"This shift is already assigned to the staff member",
		http.StatusConflict,
	)

	ErrNoShiftAssigned = apperror.New(
		apperror.CodeNotFound,
		"No shift has been assigned yet",
		http.StatusNotFound,
	)

	ErrInvalidStaffID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid staff id",
		http.StatusBadRequest,
	)
)

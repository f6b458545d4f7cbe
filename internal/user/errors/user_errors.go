package usererrors

import (
	"net/http"

	"github.com/shreyansh404/attendanceManagment/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrUserAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User already exists",
		http.StatusConflict,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role must be staff or manager",
		http.StatusBadRequest,
	)

	ErrStaffWithoutManager = apperror.New(
		apperror.CodeInvalidInput,
		"A staff user requires an owning manager",
		http.StatusBadRequest,
	)

	ErrManagerWithManager = apperror.New(
		apperror.CodeInvalidInput,
		"A manager cannot have an owning manager",
		http.StatusBadRequest,
	)
)

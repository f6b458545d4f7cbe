package autherrors

import (
	"net/http"

	"github.com/shreyansh404/attendanceManagment/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Incorrect email or password",
		http.StatusUnauthorized,
	)

	ErrPasswordMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Password doesn't match",
		http.StatusBadRequest,
	)

	ErrCannotCreateManager = apperror.New(
		apperror.CodeForbidden,
		"You cannot create a manager",
		http.StatusForbidden,
	)

	ErrManagerRoleRequired = apperror.New(
		apperror.CodeForbidden,
		"Only managers can register here",
		http.StatusForbidden,
	)

	ErrInvalidManagerSecret = apperror.New(
		apperror.CodeForbidden,
		"Invalid secret key",
		http.StatusForbidden,
	)
)

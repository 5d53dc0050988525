package autherrors

import (
	"net/http"

	"go-vms/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)
	ErrUsernameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Username already exists",
		http.StatusConflict,
	)
)

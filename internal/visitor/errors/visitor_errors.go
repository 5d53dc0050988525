package visitorerrors

import (
	"net/http"

	"go-vms/internal/shared/apperror"
)

var (
	ErrVisitorNotFound = apperror.New(
		apperror.CodeNotFound,
		"Visitor not found",
		http.StatusNotFound,
	)
	ErrMissingHost = apperror.New(
		apperror.CodeValidation,
		"An employee id or contact person is required",
		http.StatusBadRequest,
	)
	ErrInvalidContactNo = apperror.New(
		apperror.CodeValidation,
		"Contact number must be digits only, at most 10",
		http.StatusBadRequest,
	)
	ErrInvalidVisitDate = apperror.New(
		apperror.CodeValidation,
		"Visit date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidation,
		"Date filters must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
)

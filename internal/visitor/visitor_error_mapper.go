package visitor

import (
	"errors"
	"net/http"

	"go-vms/internal/shared/apperror"
	visitorerrors "go-vms/internal/visitor/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return visitorerrors.ErrVisitorNotFound
	}

	return apperror.Wrap(err, apperror.CodeInternalError, "Database operation failed", http.StatusInternalServerError)
}

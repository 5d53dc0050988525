package employee

import (
	"errors"
	"net/http"
	"strings"

	employeeerrors "go-vms/internal/employee/errors"
	"go-vms/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employees_emp_id" {
			return employeeerrors.ErrEmployeeAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employees_emp_id") {
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return apperror.Wrap(err, apperror.CodeInternalError, "Database operation failed", http.StatusInternalServerError)
}

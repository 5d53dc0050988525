package employee

import (
	"context"

	employeeerrors "go-vms/internal/employee/errors"
)

// Ids shorter than this never hit the directory: the caller is still typing
// and a partial id would only produce noisy misses.
const minLookupLen = 3

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Lookup(ctx context.Context, empID string) (EmployeeResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Lookup(ctx context.Context, empID string) (EmployeeResponse, error) {
	if len(empID) < minLookupLen {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	e, err := s.repo.FindByEmpID(ctx, empID)
	if err != nil {
		return EmployeeResponse{}, MapRepositoryError(err)
	}

	return EmployeeResponse{
		Name:       e.Name,
		Department: e.Department,
		Email:      e.Email,
	}, nil
}

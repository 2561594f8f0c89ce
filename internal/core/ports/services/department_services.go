package services

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

// DepartmentSvcFacade manages departments. Mutation is operator only; reads
// are open to managing roles within their company scope.
type DepartmentSvcFacade interface {
	CreateDepartment(ctx context.Context, principal *domain.Principal, req dto.CreateDepartmentRequest) (*domain.Department, error)
	ListDepartments(ctx context.Context, principal *domain.Principal) ([]domain.Department, error)
	UpdateDepartment(ctx context.Context, principal *domain.Principal, departmentID string, req dto.UpdateDepartmentRequest) (*domain.Department, error)
	DeleteDepartment(ctx context.Context, principal *domain.Principal, departmentID string) error
}

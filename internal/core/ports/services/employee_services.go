package services

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

// EmployeeSvcFacade manages employees within the caller's scope.
type EmployeeSvcFacade interface {
	CreateEmployee(ctx context.Context, principal *domain.Principal, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	ListEmployees(ctx context.Context, principal *domain.Principal, department string) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, principal *domain.Principal, employeeID string) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, principal *domain.Principal, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, principal *domain.Principal, employeeID string) error
}

package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	portsrepo "github.com/alisyos/daily-report-sub000/internal/core/ports/repositories"
	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

// departmentService implements the DepartmentSvcFacade interface.
type departmentService struct {
	BaseService
	departmentRepo portsrepo.DepartmentRepository
}

// NewDepartmentService creates a new department service with the provided repository.
func NewDepartmentService(departmentRepo portsrepo.DepartmentRepository) portssvc.DepartmentSvcFacade {
	return &departmentService{departmentRepo: departmentRepo}
}

var _ portssvc.DepartmentSvcFacade = (*departmentService)(nil)

func (s *departmentService) CreateDepartment(ctx context.Context, principal *domain.Principal, req dto.CreateDepartmentRequest) (*domain.Department, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator); err != nil {
		return nil, err
	}

	department := domain.Department{
		DepartmentID: uuid.NewString(),
		Name:         req.Name,
		CompanyID:    req.CompanyID,
		AuditFields:  stampAudit(principal),
	}
	if err := s.departmentRepo.SaveDepartment(ctx, department); err != nil {
		s.LogError(ctx, err, "Failed to save department",
			slog.String("name", req.Name),
			slog.String("company_id", req.CompanyID))
		return nil, err
	}

	s.LogInfo(ctx, "Department created", slog.String("department_id", department.DepartmentID))
	return &department, nil
}

// ListDepartments returns every department for operators and the caller's
// company's departments for managing roles.
func (s *departmentService) ListDepartments(ctx context.Context, principal *domain.Principal) ([]domain.Department, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator, domain.RoleCompanyManager, domain.RoleManager); err != nil {
		return nil, err
	}

	scope := domain.ResolveScope(*principal)
	departments, err := s.departmentRepo.ListDepartments(ctx, scope.CompanyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list departments")
		return nil, err
	}
	return departments, nil
}

func (s *departmentService) UpdateDepartment(ctx context.Context, principal *domain.Principal, departmentID string, req dto.UpdateDepartmentRequest) (*domain.Department, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator); err != nil {
		return nil, err
	}

	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		department.Name = *req.Name
	}
	touchAudit(&department.AuditFields, principal)

	if err := s.departmentRepo.UpdateDepartment(ctx, *department); err != nil {
		s.LogError(ctx, err, "Failed to update department", slog.String("department_id", departmentID))
		return nil, err
	}
	return department, nil
}

func (s *departmentService) DeleteDepartment(ctx context.Context, principal *domain.Principal, departmentID string) error {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator); err != nil {
		return err
	}
	if err := s.departmentRepo.DeleteDepartment(ctx, departmentID); err != nil {
		s.LogError(ctx, err, "Failed to delete department", slog.String("department_id", departmentID))
		return err
	}
	s.LogInfo(ctx, "Department deleted", slog.String("department_id", departmentID))
	return nil
}

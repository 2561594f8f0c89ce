package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alisyos/daily-report-sub000/internal/apperrors"
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	portsrepo "github.com/alisyos/daily-report-sub000/internal/core/ports/repositories"
	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/dto"
	"github.com/alisyos/daily-report-sub000/internal/utils"
)

// employeeService implements the EmployeeSvcFacade interface.
type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepository
}

// NewEmployeeService creates a new employee service with the provided repository.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepository) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// roleRank orders roles by privilege for the no-escalation check.
func roleRank(r domain.Role) int {
	switch r {
	case domain.RoleOperator:
		return 3
	case domain.RoleCompanyManager:
		return 2
	case domain.RoleManager:
		return 1
	default:
		return 0
	}
}

// CreateEmployee creates an employee within the caller's write scope. Company
// and department supplied by manager callers are overwritten with the
// manager's own, and nobody grants a role above their own.
func (s *employeeService) CreateEmployee(ctx context.Context, principal *domain.Principal, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator, domain.RoleCompanyManager, domain.RoleManager); err != nil {
		return nil, err
	}

	role := domain.Role(req.Role)
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}
	if roleRank(role) > roleRank(principal.Role) {
		return nil, apperrors.ErrForbidden
	}

	employee := domain.Employee{
		EmployeeID:   uuid.NewString(),
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
		Position:     req.Position,
		Department:   req.Department,
		CompanyID:    req.CompanyID,
		Email:        req.Email,
		Role:         role,
		AuditFields:  stampAudit(principal),
	}

	writeScope := domain.ResolveWriteScope(*principal)
	if writeScope.CompanyID != nil {
		employee.CompanyID = *writeScope.CompanyID
	}
	if writeScope.Department != nil {
		employee.Department = *writeScope.Department
	}

	if req.Password != nil && *req.Password != "" {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.LogError(ctx, err, "Failed to hash employee password")
			return nil, err
		}
		employee.PasswordHash = &hash
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee",
			slog.String("employee_code", req.EmployeeCode),
			slog.String("company_id", employee.CompanyID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee created",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("role", string(employee.Role)))
	return &employee, nil
}

// ListEmployees lists employees visible to the caller, optionally narrowed to
// one department. The department parameter cannot widen the caller's scope.
func (s *employeeService) ListEmployees(ctx context.Context, principal *domain.Principal, department string) ([]domain.Employee, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	scope := domain.ResolveScope(*principal).Narrow(department)
	employees, err := s.employeeRepo.ListEmployees(ctx, portsrepo.EmployeeFilter{
		CompanyID:  scope.CompanyID,
		Department: scope.Department,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, err
	}
	return employees, nil
}

// GetEmployee returns an employee when it lies within the caller's read
// scope; an out-of-scope employee is indistinguishable from a missing one.
func (s *employeeService) GetEmployee(ctx context.Context, principal *domain.Principal, employeeID string) (*domain.Employee, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !employee.InScope(domain.ResolveScope(*principal)) {
		return nil, apperrors.ErrNotFound
	}
	return employee, nil
}

// writeAuthority checks the caller's authority over the stored employee row.
// Authority is re-derived from the row on every mutation rather than trusted
// from the request: a manager touches only employees currently in their own
// department, a company manager only employees of their own company.
func (s *employeeService) writeAuthority(principal *domain.Principal, target *domain.Employee) error {
	if !target.InScope(domain.ResolveWriteScope(*principal)) {
		return apperrors.ErrNotFound
	}
	if roleRank(target.Role) > roleRank(principal.Role) {
		return apperrors.ErrForbidden
	}
	return nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, principal *domain.Principal, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator, domain.RoleCompanyManager, domain.RoleManager); err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if err := s.writeAuthority(principal, employee); err != nil {
		return nil, err
	}

	if req.EmployeeCode != nil {
		employee.EmployeeCode = *req.EmployeeCode
	}
	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.Email != nil {
		employee.Email = req.Email
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		if !domain.ValidRole(role) {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, *req.Role)
		}
		if roleRank(role) > roleRank(principal.Role) {
			return nil, apperrors.ErrForbidden
		}
		employee.Role = role
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.LogError(ctx, err, "Failed to hash employee password")
			return nil, err
		}
		employee.PasswordHash = &hash
	}

	// A manager cannot move an employee out of their own department.
	writeScope := domain.ResolveWriteScope(*principal)
	if writeScope.Department != nil {
		employee.Department = *writeScope.Department
	}
	touchAudit(&employee.AuditFields, principal)

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, principal *domain.Principal, employeeID string) error {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator, domain.RoleCompanyManager, domain.RoleManager); err != nil {
		return err
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if err := s.writeAuthority(principal, employee); err != nil {
		return err
	}

	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		return err
	}
	s.LogInfo(ctx, "Employee deleted", slog.String("employee_id", employeeID))
	return nil
}

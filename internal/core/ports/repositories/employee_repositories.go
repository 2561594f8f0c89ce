package repositories

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// EmployeeFilter restricts employee listing. Nil fields are unrestricted.
type EmployeeFilter struct {
	CompanyID  *string
	Department *string
}

// EmployeeReader defines read operations for employee data.
type EmployeeReader interface {
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data.
type EmployeeWriter interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// EmployeeRepository combines all employee repository interfaces.
type EmployeeRepository interface {
	EmployeeReader
	EmployeeWriter
}

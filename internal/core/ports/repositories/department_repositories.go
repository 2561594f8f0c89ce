package repositories

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// DepartmentReader defines read operations for department data.
type DepartmentReader interface {
	FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)
	// ListDepartments returns departments, restricted to a company when
	// companyID is non-nil.
	ListDepartments(ctx context.Context, companyID *string) ([]domain.Department, error)
}

// DepartmentWriter defines write operations for department data.
type DepartmentWriter interface {
	SaveDepartment(ctx context.Context, department domain.Department) error
	UpdateDepartment(ctx context.Context, department domain.Department) error
	DeleteDepartment(ctx context.Context, departmentID string) error
}

// DepartmentRepository combines all department repository interfaces.
type DepartmentRepository interface {
	DepartmentReader
	DepartmentWriter
}

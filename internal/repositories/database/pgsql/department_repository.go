package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alisyos/daily-report-sub000/internal/apperrors"
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	portsrepo "github.com/alisyos/daily-report-sub000/internal/core/ports/repositories"
)

type PgxDepartmentRepository struct {
	BaseRepository
}

// newPgxDepartmentRepository creates a new repository for department data.
func newPgxDepartmentRepository(pool *pgxpool.Pool) portsrepo.DepartmentRepository {
	return &PgxDepartmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DepartmentRepository = (*PgxDepartmentRepository)(nil)

const departmentColumns = `department_id, name, company_id, created_at, created_by, last_updated_at, last_updated_by`

func scanDepartment(row pgx.Row) (domain.Department, error) {
	var d domain.Department
	err := row.Scan(
		&d.DepartmentID,
		&d.Name,
		&d.CompanyID,
		&d.CreatedAt,
		&d.CreatedBy,
		&d.LastUpdatedAt,
		&d.LastUpdatedBy,
	)
	return d, err
}

// SaveDepartment inserts a new department. Name uniqueness within the company
// is enforced by a constraint.
func (r *PgxDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	query := `
		INSERT INTO departments (department_id, name, company_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		department.DepartmentID,
		department.Name,
		department.CompanyID,
		department.CreatedAt,
		department.CreatedBy,
		department.LastUpdatedAt,
		department.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save department %s: %w", department.DepartmentID, translateErr(err))
	}
	return nil
}

// FindDepartmentByID retrieves a department by its ID.
func (r *PgxDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE department_id = $1;`
	department, err := scanDepartment(r.Pool.QueryRow(ctx, query, departmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find department %s: %w", departmentID, err)
	}
	return &department, nil
}

// ListDepartments retrieves departments, restricted to a company when
// companyID is non-nil.
func (r *PgxDepartmentRepository) ListDepartments(ctx context.Context, companyID *string) ([]domain.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments`
	args := []any{}
	if companyID != nil {
		query += ` WHERE company_id = $1`
		args = append(args, *companyID)
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	departments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Department, error) {
		return scanDepartment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan departments: %w", err)
	}
	return departments, nil
}

// UpdateDepartment updates a department's mutable fields.
func (r *PgxDepartmentRepository) UpdateDepartment(ctx context.Context, department domain.Department) error {
	query := `
		UPDATE departments
		SET name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE department_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		department.DepartmentID,
		department.Name,
		department.LastUpdatedAt,
		department.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update department %s: %w", department.DepartmentID, translateErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteDepartment removes a department.
func (r *PgxDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM departments WHERE department_id = $1;`, departmentID)
	if err != nil {
		return fmt.Errorf("failed to delete department %s: %w", departmentID, translateErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

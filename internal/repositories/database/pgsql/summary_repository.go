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

type PgxSummaryRepository struct {
	BaseRepository
}

// newPgxSummaryRepository creates a new repository for department summaries.
func newPgxSummaryRepository(pool *pgxpool.Pool) portsrepo.SummaryRepository {
	return &PgxSummaryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SummaryRepository = (*PgxSummaryRepository)(nil)

const summaryColumns = `summary_id, summary_date, company_id, department, summary, created_at, created_by, last_updated_at, last_updated_by`

func scanSummary(row pgx.Row) (domain.DepartmentSummary, error) {
	var s domain.DepartmentSummary
	err := row.Scan(
		&s.SummaryID,
		&s.Date,
		&s.CompanyID,
		&s.Department,
		&s.Summary,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

// FindSummary retrieves the summary for (company, date, department).
func (r *PgxSummaryRepository) FindSummary(ctx context.Context, companyID, date, department string) (*domain.DepartmentSummary, error) {
	query := `SELECT ` + summaryColumns + ` FROM department_summaries WHERE company_id = $1 AND summary_date = $2 AND department = $3;`
	summary, err := scanSummary(r.Pool.QueryRow(ctx, query, companyID, date, department))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find summary for %s %s: %w", date, department, err)
	}
	return &summary, nil
}

// ListSummaries retrieves summaries matching the filter, newest date first.
func (r *PgxSummaryRepository) ListSummaries(ctx context.Context, filter portsrepo.SummaryFilter) ([]domain.DepartmentSummary, error) {
	query := `SELECT ` + summaryColumns + ` FROM department_summaries WHERE 1=1`
	args := []any{}
	add := func(clause string, value any) {
		args = append(args, value)
		query += fmt.Sprintf(clause, len(args))
	}
	if filter.CompanyID != nil {
		add(` AND company_id = $%d`, *filter.CompanyID)
	}
	if filter.Department != nil {
		add(` AND department = $%d`, *filter.Department)
	}
	if filter.Date != nil {
		add(` AND summary_date = $%d`, *filter.Date)
	}
	if filter.From != nil {
		add(` AND summary_date >= $%d`, *filter.From)
	}
	if filter.To != nil {
		add(` AND summary_date <= $%d`, *filter.To)
	}
	query += ` ORDER BY summary_date DESC, department;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	defer rows.Close()

	summaries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DepartmentSummary, error) {
		return scanSummary(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan summaries: %w", err)
	}
	return summaries, nil
}

// UpsertSummary updates the row for (company, date, department) and inserts
// it when no row was affected. Both statements run inside one transaction so
// the natural key keeps at most one row. Department names repeat across
// companies, so the company is part of the key.
func (r *PgxSummaryRepository) UpsertSummary(ctx context.Context, summary domain.DepartmentSummary) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateQuery := `
		UPDATE department_summaries
		SET summary = $4, last_updated_at = $5, last_updated_by = $6
		WHERE company_id = $1 AND summary_date = $2 AND department = $3;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		summary.CompanyID,
		summary.Date,
		summary.Department,
		summary.Summary,
		summary.LastUpdatedAt,
		summary.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update summary for %s %s: %w", summary.Date, summary.Department, err)
	}

	if tag.RowsAffected() == 0 {
		insertQuery := `
			INSERT INTO department_summaries (summary_id, summary_date, company_id, department, summary, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
		`
		_, err = tx.Exec(ctx, insertQuery,
			summary.SummaryID,
			summary.Date,
			summary.CompanyID,
			summary.Department,
			summary.Summary,
			summary.CreatedAt,
			summary.CreatedBy,
			summary.LastUpdatedAt,
			summary.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert summary for %s %s: %w", summary.Date, summary.Department, translateErr(err))
		}
	}

	return r.Commit(ctx, tx)
}

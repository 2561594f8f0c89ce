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

type PgxReportRepository struct {
	BaseRepository
}

// newPgxReportRepository creates a new repository for daily report entries.
func newPgxReportRepository(pool *pgxpool.Pool) portsrepo.ReportRepository {
	return &PgxReportRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReportRepository = (*PgxReportRepository)(nil)

const reportColumns = `report_id, report_date, employee_name, employee_id, company_id, department, work_overview, progress_goal, achievement_rate, manager_evaluation, remarks, created_at, created_by, last_updated_at, last_updated_by`

func scanReport(row pgx.Row) (domain.DailyReportEntry, error) {
	var e domain.DailyReportEntry
	err := row.Scan(
		&e.ReportID,
		&e.Date,
		&e.EmployeeName,
		&e.EmployeeID,
		&e.CompanyID,
		&e.Department,
		&e.WorkOverview,
		&e.ProgressGoal,
		&e.AchievementRate,
		&e.ManagerEvaluation,
		&e.Remarks,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	return e, err
}

// FindReportByID retrieves one entry by its row ID.
func (r *PgxReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.DailyReportEntry, error) {
	query := `SELECT ` + reportColumns + ` FROM daily_reports WHERE report_id = $1;`
	entry, err := scanReport(r.Pool.QueryRow(ctx, query, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find report %s: %w", reportID, err)
	}
	return &entry, nil
}

// ListReports retrieves entries matching the filter, ordered by date then
// employee name.
func (r *PgxReportRepository) ListReports(ctx context.Context, filter portsrepo.ReportFilter) ([]domain.DailyReportEntry, error) {
	query := `SELECT ` + reportColumns + ` FROM daily_reports WHERE 1=1`
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
	if filter.EmployeeID != nil {
		add(` AND employee_id = $%d`, *filter.EmployeeID)
	}
	if filter.EmployeeName != nil {
		add(` AND employee_name = $%d`, *filter.EmployeeName)
	}
	if filter.Date != nil {
		add(` AND report_date = $%d`, *filter.Date)
	}
	if filter.From != nil {
		add(` AND report_date >= $%d`, *filter.From)
	}
	if filter.To != nil {
		add(` AND report_date <= $%d`, *filter.To)
	}
	query += ` ORDER BY report_date, employee_name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailyReportEntry, error) {
		return scanReport(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan reports: %w", err)
	}
	return entries, nil
}

// insertReportsTx inserts entries within the given transaction.
func insertReportsTx(ctx context.Context, tx pgx.Tx, entries []domain.DailyReportEntry) error {
	query := `
		INSERT INTO daily_reports (report_id, report_date, employee_name, employee_id, company_id, department, work_overview, progress_goal, achievement_rate, manager_evaluation, remarks, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	for _, e := range entries {
		_, err := tx.Exec(ctx, query,
			e.ReportID,
			e.Date,
			e.EmployeeName,
			e.EmployeeID,
			e.CompanyID,
			e.Department,
			e.WorkOverview,
			e.ProgressGoal,
			e.AchievementRate,
			e.ManagerEvaluation,
			e.Remarks,
			e.CreatedAt,
			e.CreatedBy,
			e.LastUpdatedAt,
			e.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert report %s: %w", e.ReportID, translateErr(err))
		}
	}
	return nil
}

// InsertReports inserts a batch of fresh entries in one transaction.
func (r *PgxReportRepository) InsertReports(ctx context.Context, entries []domain.DailyReportEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertReportsTx(ctx, tx, entries); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// replaceReports deletes every row matching the identity clause and inserts
// the replacement entries, all within one transaction so readers never
// observe a half-replaced day.
func (r *PgxReportRepository) replaceReports(ctx context.Context, deleteQuery string, deleteArgs []any, entries []domain.DailyReportEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("failed to delete reports: %w", err)
	}
	if err := insertReportsTx(ctx, tx, entries); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// ReplaceReportsByEmployeeIDs replaces every entry for (date, employee_id).
func (r *PgxReportRepository) ReplaceReportsByEmployeeIDs(ctx context.Context, date string, employeeIDs []string, entries []domain.DailyReportEntry) error {
	query := `DELETE FROM daily_reports WHERE report_date = $1 AND employee_id = ANY($2);`
	return r.replaceReports(ctx, query, []any{date, employeeIDs}, entries)
}

// ReplaceReportsByEmployeeNames replaces every entry for (date, employee_name),
// the fallback for legacy rows without an employee ID. Names collide across
// companies, so the delete is scoped to the company unless companyID is empty.
func (r *PgxReportRepository) ReplaceReportsByEmployeeNames(ctx context.Context, date, companyID string, employeeNames []string, entries []domain.DailyReportEntry) error {
	if companyID == "" {
		query := `DELETE FROM daily_reports WHERE report_date = $1 AND employee_name = ANY($2);`
		return r.replaceReports(ctx, query, []any{date, employeeNames}, entries)
	}
	query := `DELETE FROM daily_reports WHERE report_date = $1 AND company_id = $2 AND employee_name = ANY($3);`
	return r.replaceReports(ctx, query, []any{date, companyID, employeeNames}, entries)
}

// DeleteReportByID removes one entry by its row ID.
func (r *PgxReportRepository) DeleteReportByID(ctx context.Context, reportID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM daily_reports WHERE report_id = $1;`, reportID)
	if err != nil {
		return fmt.Errorf("failed to delete report %s: %w", reportID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

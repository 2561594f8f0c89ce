package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/alisyos/daily-report-sub000/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every pgx-backed repository over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:    newPgxCompanyRepository(pool),
		DepartmentRepo: newPgxDepartmentRepository(pool),
		EmployeeRepo:   newPgxEmployeeRepository(pool),
		ReportRepo:     newPgxReportRepository(pool),
		SummaryRepo:    newPgxSummaryRepository(pool),
		MissionRepo:    newPgxMissionRepository(pool),
		ProjectRepo:    newPgxProjectRepository(pool),
		PromptRepo:     newPgxPromptRepository(pool),
	}
}

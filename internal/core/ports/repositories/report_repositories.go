package repositories

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// ReportFilter restricts report listing. Nil fields are unrestricted; Date
// selects a single day while From/To select an inclusive range.
type ReportFilter struct {
	CompanyID    *string
	Department   *string
	EmployeeID   *string
	EmployeeName *string
	Date         *string
	From         *string
	To           *string
}

// ReportReader defines read operations for daily report entries.
type ReportReader interface {
	FindReportByID(ctx context.Context, reportID string) (*domain.DailyReportEntry, error)
	ListReports(ctx context.Context, filter ReportFilter) ([]domain.DailyReportEntry, error)
}

// ReportWriter defines write operations for daily report entries. The Replace
// variants delete every stored entry matching (date, identity) and insert the
// given entries within a single transaction. Employee names are only unique
// within a company, so the name variant additionally takes the company ID;
// an empty company ID leaves the delete unscoped for unbounded callers.
type ReportWriter interface {
	InsertReports(ctx context.Context, entries []domain.DailyReportEntry) error
	ReplaceReportsByEmployeeIDs(ctx context.Context, date string, employeeIDs []string, entries []domain.DailyReportEntry) error
	ReplaceReportsByEmployeeNames(ctx context.Context, date, companyID string, employeeNames []string, entries []domain.DailyReportEntry) error
	DeleteReportByID(ctx context.Context, reportID string) error
}

// ReportRepository combines all report repository interfaces.
type ReportRepository interface {
	ReportReader
	ReportWriter
}

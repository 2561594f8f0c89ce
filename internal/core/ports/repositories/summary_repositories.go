package repositories

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// SummaryFilter restricts summary listing. Nil fields are unrestricted.
type SummaryFilter struct {
	CompanyID  *string
	Department *string
	Date       *string
	From       *string
	To         *string
}

// SummaryReader defines read operations for department summaries.
type SummaryReader interface {
	FindSummary(ctx context.Context, companyID, date, department string) (*domain.DepartmentSummary, error)
	ListSummaries(ctx context.Context, filter SummaryFilter) ([]domain.DepartmentSummary, error)
}

// SummaryWriter defines write operations for department summaries.
type SummaryWriter interface {
	// UpsertSummary updates the row for (company, date, department) and
	// inserts it when no row was affected, inside one transaction.
	UpsertSummary(ctx context.Context, summary domain.DepartmentSummary) error
}

// SummaryRepository combines all summary repository interfaces.
type SummaryRepository interface {
	SummaryReader
	SummaryWriter
}

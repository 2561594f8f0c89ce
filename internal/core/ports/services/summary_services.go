package services

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

// SummarySvcFacade manages per-(date, department) summaries.
type SummarySvcFacade interface {
	UpsertSummary(ctx context.Context, principal *domain.Principal, req dto.UpsertSummaryRequest) (*domain.DepartmentSummary, error)
	// GenerateSummary produces an LLM summary of the department's reports for
	// the date and tries to persist it. The text is returned even when
	// persistence fails; persisted reports whether it was stored.
	GenerateSummary(ctx context.Context, principal *domain.Principal, req dto.GenerateSummaryRequest) (summary string, persisted bool, err error)
	ListSummaries(ctx context.Context, principal *domain.Principal, q dto.ListSummariesQuery) ([]domain.DepartmentSummary, error)
}

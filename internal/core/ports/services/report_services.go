package services

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

// ReportSvcFacade reconciles and reads daily report entries.
type ReportSvcFacade interface {
	// SubmitReports validates and reconciles a batch for a single date,
	// replacing existing rows when the batch is an update.
	SubmitReports(ctx context.Context, principal *domain.Principal, req dto.SubmitReportsRequest) ([]domain.DailyReportEntry, error)
	ListReports(ctx context.Context, principal *domain.Principal, q dto.ListReportsQuery) ([]domain.DailyReportEntry, error)
	// CompleteReportList unions stored entries for a date with synthetic
	// not-submitted placeholders for every in-scope employee without one.
	CompleteReportList(ctx context.Context, principal *domain.Principal, q dto.CompleteListQuery) ([]domain.DailyReportEntry, error)
	DeleteReport(ctx context.Context, principal *domain.Principal, reportID string) error
	// DeleteLegacyReport removes a historical entry matched by content,
	// using the delete-all-then-reinsert-remainder pattern.
	DeleteLegacyReport(ctx context.Context, principal *domain.Principal, req dto.DeleteLegacyReportRequest) error
}

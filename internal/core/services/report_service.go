package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alisyos/daily-report-sub000/internal/apperrors"
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	portsrepo "github.com/alisyos/daily-report-sub000/internal/core/ports/repositories"
	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/dto"
	"github.com/alisyos/daily-report-sub000/internal/utils/reporting"
)

// reportService implements the ReportSvcFacade interface.
type reportService struct {
	BaseService
	reportRepo   portsrepo.ReportRepository
	employeeRepo portsrepo.EmployeeReader
}

// NewReportService creates a new report service with the provided repositories.
func NewReportService(reportRepo portsrepo.ReportRepository, employeeRepo portsrepo.EmployeeReader) portssvc.ReportSvcFacade {
	return &reportService{reportRepo: reportRepo, employeeRepo: employeeRepo}
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// scopeFilter seeds a report filter from the caller's visibility scope.
func scopeFilter(scope domain.Scope) portsrepo.ReportFilter {
	return portsrepo.ReportFilter{
		CompanyID:  scope.CompanyID,
		Department: scope.Department,
	}
}

// SubmitReports reconciles one batch of work items for a single date. Blank
// rows are dropped first, the batch invariants are checked, then the caller's
// write scope is stamped onto every entry. An update batch replaces every
// stored row for the batch's (date, identity) set in one transaction; a fresh
// batch is plainly inserted.
func (s *reportService) SubmitReports(ctx context.Context, principal *domain.Principal, req dto.SubmitReportsRequest) ([]domain.DailyReportEntry, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	entries := make([]domain.DailyReportEntry, 0, len(req.Reports))
	for _, r := range req.Reports {
		entries = append(entries, r.ToReportEntry())
	}
	entries = domain.FilterBlank(entries)
	if err := domain.ValidateReportBatch(entries); err != nil {
		return nil, err
	}

	writeScope := domain.ResolveWriteScope(*principal)
	for i := range entries {
		entries[i].ReportID = uuid.NewString()
		entries[i].AuditFields = stampAudit(principal)
		if writeScope.CompanyID != nil {
			entries[i].CompanyID = *writeScope.CompanyID
		}
		if writeScope.Department != nil {
			entries[i].Department = *writeScope.Department
		} else if entries[i].Department == "" {
			entries[i].Department = principal.Department
		}
	}

	date := entries[0].Date
	if req.IsUpdate {
		identity := domain.ResolveBatchIdentity(entries)
		var err error
		switch identity.Kind {
		case domain.BatchByEmployeeID:
			err = s.reportRepo.ReplaceReportsByEmployeeIDs(ctx, date, identity.EmployeeIDs, entries)
		default:
			// Names collide across companies; the replace must not touch
			// another tenant's rows.
			companyID := ""
			if writeScope.CompanyID != nil {
				companyID = *writeScope.CompanyID
			}
			err = s.reportRepo.ReplaceReportsByEmployeeNames(ctx, date, companyID, identity.EmployeeNames, entries)
		}
		if err != nil {
			s.LogError(ctx, err, "Failed to replace report batch",
				slog.String("date", date),
				slog.Int("entries", len(entries)))
			return nil, err
		}
	} else {
		if err := s.reportRepo.InsertReports(ctx, entries); err != nil {
			s.LogError(ctx, err, "Failed to insert report batch",
				slog.String("date", date),
				slog.Int("entries", len(entries)))
			return nil, err
		}
	}

	s.LogInfo(ctx, "Report batch submitted",
		slog.String("date", date),
		slog.Int("entries", len(entries)),
		slog.Bool("update", req.IsUpdate))
	return entries, nil
}

func (s *reportService) ListReports(ctx context.Context, principal *domain.Principal, q dto.ListReportsQuery) ([]domain.DailyReportEntry, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	filter := scopeFilter(domain.ResolveScope(*principal).Narrow(q.Department))
	if q.Date != "" {
		filter.Date = &q.Date
	}
	if q.From != "" {
		filter.From = &q.From
	}
	if q.To != "" {
		filter.To = &q.To
	}
	if q.Employee != "" {
		filter.EmployeeName = &q.Employee
	}

	entries, err := s.reportRepo.ListReports(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reports")
		return nil, err
	}
	return entries, nil
}

// CompleteReportList unions the stored entries for a date with synthetic
// not-submitted placeholder rows for every in-scope employee without one.
// Placeholders exist only in the response.
func (s *reportService) CompleteReportList(ctx context.Context, principal *domain.Principal, q dto.CompleteListQuery) ([]domain.DailyReportEntry, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	scope := domain.ResolveScope(*principal).Narrow(q.Department)
	filter := scopeFilter(scope)
	filter.Date = &q.Date

	entries, err := s.reportRepo.ListReports(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reports for complete view")
		return nil, err
	}
	employees, err := s.employeeRepo.ListEmployees(ctx, portsrepo.EmployeeFilter{
		CompanyID:  scope.CompanyID,
		Department: scope.Department,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees for complete view")
		return nil, err
	}

	return reporting.DecorateNotSubmitted(q.Date, entries, employees), nil
}

// DeleteReport removes one entry by ID. Out-of-scope rows read as missing.
func (s *reportService) DeleteReport(ctx context.Context, principal *domain.Principal, reportID string) error {
	if principal == nil {
		return apperrors.ErrUnauthenticated
	}

	entry, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		return err
	}
	scope := domain.ResolveWriteScope(*principal)
	if scope.CompanyID != nil && entry.CompanyID != *scope.CompanyID {
		return apperrors.ErrNotFound
	}
	if scope.Department != nil && entry.Department != *scope.Department {
		return apperrors.ErrNotFound
	}

	if err := s.reportRepo.DeleteReportByID(ctx, reportID); err != nil {
		s.LogError(ctx, err, "Failed to delete report", slog.String("report_id", reportID))
		return err
	}
	s.LogInfo(ctx, "Report deleted", slog.String("report_id", reportID))
	return nil
}

// DeleteLegacyReport removes a historical entry that has no durable row ID by
// matching its content. Every row for (date, employee name) is loaded, the
// rows whose overview differs are kept, and the keeper set replaces the
// original rows in one transaction.
func (s *reportService) DeleteLegacyReport(ctx context.Context, principal *domain.Principal, req dto.DeleteLegacyReportRequest) error {
	if principal == nil {
		return apperrors.ErrUnauthenticated
	}

	writeScope := domain.ResolveWriteScope(*principal)
	filter := scopeFilter(writeScope)
	filter.Date = &req.Date
	filter.EmployeeName = &req.EmployeeName

	entries, err := s.reportRepo.ListReports(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load reports for legacy delete")
		return err
	}

	remainder := make([]domain.DailyReportEntry, 0, len(entries))
	for _, e := range entries {
		if e.WorkOverview != req.WorkOverview {
			remainder = append(remainder, e)
		}
	}
	if len(remainder) == len(entries) {
		return apperrors.ErrNotFound
	}

	// The delete must cover exactly the rows the remainder was computed
	// from: narrower loses nothing but collides on reinsert, wider drops
	// another company's same-named rows.
	companyID := ""
	if writeScope.CompanyID != nil {
		companyID = *writeScope.CompanyID
	}
	err = s.reportRepo.ReplaceReportsByEmployeeNames(ctx, req.Date, companyID, []string{req.EmployeeName}, remainder)
	if err != nil {
		s.LogError(ctx, err, "Failed to replace reports for legacy delete",
			slog.String("date", req.Date),
			slog.String("employee", req.EmployeeName))
		return err
	}
	s.LogInfo(ctx, "Legacy report deleted",
		slog.String("date", req.Date),
		slog.String("employee", req.EmployeeName))
	return nil
}

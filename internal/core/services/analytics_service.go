package services

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/apperrors"
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	portsrepo "github.com/alisyos/daily-report-sub000/internal/core/ports/repositories"
	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/dto"
	"github.com/alisyos/daily-report-sub000/internal/utils/reporting"
)

// analyticsService implements the AnalyticsSvcFacade interface.
type analyticsService struct {
	BaseService
	reportRepo portsrepo.ReportReader
}

// NewAnalyticsService creates a new analytics service with the provided repository.
func NewAnalyticsService(reportRepo portsrepo.ReportReader) portssvc.AnalyticsSvcFacade {
	return &analyticsService{reportRepo: reportRepo}
}

var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

// Attendance rolls up the caller-visible reports in the period into
// per-employee working-day, leave-day and average achievement stats.
func (s *analyticsService) Attendance(ctx context.Context, principal *domain.Principal, q dto.AttendanceQuery) ([]reporting.AttendanceStat, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	filter := scopeFilter(domain.ResolveScope(*principal).Narrow(q.Department))
	filter.From = &q.From
	filter.To = &q.To
	if q.Employee != "" {
		filter.EmployeeName = &q.Employee
	}

	entries, err := s.reportRepo.ListReports(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reports for attendance")
		return nil, err
	}
	return reporting.AttendanceByEmployee(entries), nil
}

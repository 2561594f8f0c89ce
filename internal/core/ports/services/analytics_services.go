package services

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	"github.com/alisyos/daily-report-sub000/internal/dto"
	"github.com/alisyos/daily-report-sub000/internal/utils/reporting"
)

// AnalyticsSvcFacade serves the read-side aggregation views.
type AnalyticsSvcFacade interface {
	// Attendance computes per-employee working-day, leave-day and average
	// achievement stats over the requested period.
	Attendance(ctx context.Context, principal *domain.Principal, q dto.AttendanceQuery) ([]reporting.AttendanceStat, error)
}

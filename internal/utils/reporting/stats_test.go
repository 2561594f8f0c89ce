package reporting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	"github.com/alisyos/daily-report-sub000/internal/utils/reporting"
)

func reportEntry(date, name, overview string, rate int) domain.DailyReportEntry {
	return domain.DailyReportEntry{
		Date:            date,
		EmployeeName:    name,
		WorkOverview:    overview,
		AchievementRate: rate,
	}
}

func TestAttendanceByEmployee(t *testing.T) {
	// Three days: one regular report, one annual leave, one day without any
	// entry. Only the regular day counts toward the average.
	entries := []domain.DailyReportEntry{
		reportEntry("2026-08-03", "김철수", "기능 개발", 80),
		reportEntry("2026-08-04", "김철수", domain.WorkOverviewAnnualLeave, 0),
	}

	stats := reporting.AttendanceByEmployee(entries)
	require.Len(t, stats, 1)
	assert.Equal(t, "김철수", stats[0].EmployeeName)
	assert.Equal(t, 1, stats[0].WorkingDays)
	assert.Equal(t, 1, stats[0].LeaveDays)
	assert.True(t, stats[0].AverageAchievement.Equal(decimal.NewFromInt(80)))
}

func TestAttendanceByEmployee_MultipleEntriesSameDay(t *testing.T) {
	entries := []domain.DailyReportEntry{
		reportEntry("2026-08-03", "이영희", "리뷰", 100),
		reportEntry("2026-08-03", "이영희", "배포", 50),
	}

	stats := reporting.AttendanceByEmployee(entries)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].WorkingDays, "distinct dates, not entries")
	assert.True(t, stats[0].AverageAchievement.Equal(decimal.NewFromInt(75)), "averaged per entry")
}

func TestAttendanceByEmployee_SkipsPlaceholders(t *testing.T) {
	entries := []domain.DailyReportEntry{
		reportEntry("2026-08-03", "박민수", domain.WorkOverviewNotSubmitted, 0),
	}
	assert.Empty(t, reporting.AttendanceByEmployee(entries))
}

func TestDecorateNotSubmitted(t *testing.T) {
	submittedID := "e1"
	entries := []domain.DailyReportEntry{
		{Date: "2026-08-03", EmployeeName: "김철수", EmployeeID: &submittedID, WorkOverview: "개발"},
	}
	employees := []domain.Employee{
		{EmployeeID: "e1", Name: "김철수", CompanyID: "c1", Department: "개발"},
		{EmployeeID: "e2", Name: "이영희", CompanyID: "c1", Department: "개발"},
	}

	complete := reporting.DecorateNotSubmitted("2026-08-03", entries, employees)
	require.Len(t, complete, 2)

	placeholder := complete[1]
	assert.Equal(t, "이영희", placeholder.EmployeeName)
	assert.True(t, placeholder.IsPlaceholder())
	assert.Empty(t, placeholder.ReportID, "placeholders carry no row identity")
}

func TestDecorateNotSubmitted_MatchesLegacyByName(t *testing.T) {
	// A legacy entry without an employee ID still counts as submitted for the
	// employee with that name.
	entries := []domain.DailyReportEntry{
		{Date: "2026-08-03", EmployeeName: "김철수", WorkOverview: "개발"},
	}
	employees := []domain.Employee{
		{EmployeeID: "e1", Name: "김철수", CompanyID: "c1", Department: "개발"},
	}

	complete := reporting.DecorateNotSubmitted("2026-08-03", entries, employees)
	assert.Len(t, complete, 1)
}

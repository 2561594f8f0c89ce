// Package reporting holds pure read-side transformations over already-scoped
// report lists: attendance accounting and the complete-list decoration. None
// of these functions touch the store.
package reporting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// AttendanceStat is the per-employee roll-up for a period: distinct working
// dates, distinct leave dates, and the average achievement rate over regular
// entries only. Leave entries and not-submitted placeholders contribute to
// neither the numerator nor the denominator of the average.
type AttendanceStat struct {
	EmployeeID         *string
	EmployeeName       string
	WorkingDays        int
	LeaveDays          int
	AverageAchievement decimal.Decimal
}

type attendanceAcc struct {
	employeeID   *string
	employeeName string
	workDates    map[string]bool
	leaveDates   map[string]bool
	rateSum      decimal.Decimal
	rateCount    int64
}

// identityOf groups by employee ID when present, falling back to the name for
// legacy entries.
func identityOf(e domain.DailyReportEntry) string {
	if e.EmployeeID != nil && *e.EmployeeID != "" {
		return "id:" + *e.EmployeeID
	}
	return "name:" + e.EmployeeName
}

// AttendanceByEmployee groups entries by employee identity and computes the
// attendance stats. Placeholders are skipped entirely.
func AttendanceByEmployee(entries []domain.DailyReportEntry) []AttendanceStat {
	accs := map[string]*attendanceAcc{}
	order := []string{}

	for _, e := range entries {
		if e.IsPlaceholder() {
			continue
		}
		key := identityOf(e)
		acc, ok := accs[key]
		if !ok {
			acc = &attendanceAcc{
				employeeID:   e.EmployeeID,
				employeeName: e.EmployeeName,
				workDates:    map[string]bool{},
				leaveDates:   map[string]bool{},
				rateSum:      decimal.Zero,
			}
			accs[key] = acc
			order = append(order, key)
		}
		if e.IsAnnualLeave() {
			acc.leaveDates[e.Date] = true
			continue
		}
		acc.workDates[e.Date] = true
		acc.rateSum = acc.rateSum.Add(decimal.NewFromInt(int64(e.AchievementRate)))
		acc.rateCount++
	}

	sort.Strings(order)
	stats := make([]AttendanceStat, 0, len(order))
	for _, key := range order {
		acc := accs[key]
		avg := decimal.Zero
		if acc.rateCount > 0 {
			avg = acc.rateSum.Div(decimal.NewFromInt(acc.rateCount))
		}
		stats = append(stats, AttendanceStat{
			EmployeeID:         acc.employeeID,
			EmployeeName:       acc.employeeName,
			WorkingDays:        len(acc.workDates),
			LeaveDays:          len(acc.leaveDates),
			AverageAchievement: avg,
		})
	}
	return stats
}

// DecorateNotSubmitted unions the submitted entries for a date with synthetic
// "작성 안됨" placeholder rows for every in-scope employee without one. The
// placeholders carry no report ID and are never persisted.
func DecorateNotSubmitted(date string, entries []domain.DailyReportEntry, employees []domain.Employee) []domain.DailyReportEntry {
	submitted := map[string]bool{}
	for _, e := range entries {
		if e.EmployeeID != nil && *e.EmployeeID != "" {
			submitted["id:"+*e.EmployeeID] = true
		}
		submitted["name:"+e.EmployeeName] = true
	}

	complete := make([]domain.DailyReportEntry, len(entries))
	copy(complete, entries)
	for _, emp := range employees {
		if submitted["id:"+emp.EmployeeID] || submitted["name:"+emp.Name] {
			continue
		}
		employeeID := emp.EmployeeID
		complete = append(complete, domain.DailyReportEntry{
			Date:         date,
			EmployeeName: emp.Name,
			EmployeeID:   &employeeID,
			CompanyID:    emp.CompanyID,
			Department:   emp.Department,
			WorkOverview: domain.WorkOverviewNotSubmitted,
		})
	}
	return complete
}

package domain

import "github.com/shopspring/decimal"

// MissionStatus tracks mission lifecycle state.
type MissionStatus string

const (
	MissionPending    MissionStatus = "대기"
	MissionInProgress MissionStatus = "진행중"
	MissionDone       MissionStatus = "완료"
)

// ValidMissionStatus reports whether s is a known mission status.
func ValidMissionStatus(s MissionStatus) bool {
	switch s {
	case MissionPending, MissionInProgress, MissionDone:
		return true
	}
	return false
}

// Mission is a department-level objective owning zero or more KPIs. Deleting
// a mission cascades to its KPIs (enforced by the store).
type Mission struct {
	MissionID    string        `json:"missionID" db:"mission_id"`
	MissionName  string        `json:"missionName" db:"mission_name"`
	Description  string        `json:"description" db:"description"`
	Assignee     string        `json:"assignee" db:"assignee"`
	Department   string        `json:"department" db:"department"`
	CompanyID    string        `json:"companyID" db:"company_id"`
	StartDate    string        `json:"startDate" db:"start_date"`
	EndDate      string        `json:"endDate" db:"end_date"`
	Status       MissionStatus `json:"status" db:"status"`
	ProgressRate int           `json:"progressRate" db:"progress_rate"`
	Kpis         []MissionKpi  `json:"kpis,omitempty" db:"-"`
	AuditFields
}

// MissionKpi is a measurable target owned by a mission.
type MissionKpi struct {
	KpiID        string          `json:"kpiID" db:"kpi_id"`
	MissionID    string          `json:"missionID" db:"mission_id"`
	KpiName      string          `json:"kpiName" db:"kpi_name"`
	TargetValue  decimal.Decimal `json:"targetValue" db:"target_value"`
	CurrentValue decimal.Decimal `json:"currentValue" db:"current_value"`
	Unit         string          `json:"unit" db:"unit"`
}

// AchievementRate returns current/target as a percentage. A zero target
// yields zero rather than dividing.
func (k MissionKpi) AchievementRate() decimal.Decimal {
	if k.TargetValue.IsZero() {
		return decimal.Zero
	}
	return k.CurrentValue.Div(k.TargetValue).Mul(decimal.NewFromInt(100))
}

// DisplayBarWidth returns the achievement rate clamped to 100 for rendering a
// progress bar. The numeric label stays unclamped; only the bar width is.
func (k MissionKpi) DisplayBarWidth() decimal.Decimal {
	rate := k.AchievementRate()
	hundred := decimal.NewFromInt(100)
	if rate.GreaterThan(hundred) {
		return hundred
	}
	return rate
}

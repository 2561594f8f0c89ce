package dto

import (
	"github.com/alisyos/daily-report-sub000/internal/utils/reporting"
	"github.com/shopspring/decimal"
)

// AttendanceQuery selects the period for a personal attendance summary.
type AttendanceQuery struct {
	From       string `form:"from" binding:"required,workdate"`
	To         string `form:"to" binding:"required,workdate"`
	Department string `form:"department"`
	Employee   string `form:"employee"`
}

// AttendanceResponse is the per-employee attendance roll-up for a period.
type AttendanceResponse struct {
	EmployeeID         *string         `json:"employeeID,omitempty"`
	EmployeeName       string          `json:"employeeName"`
	WorkingDays        int             `json:"workingDays"`
	LeaveDays          int             `json:"leaveDays"`
	AverageAchievement decimal.Decimal `json:"averageAchievement"`
}

// ToAttendanceResponses converts attendance stats to DTO.
func ToAttendanceResponses(stats []reporting.AttendanceStat) []AttendanceResponse {
	list := make([]AttendanceResponse, len(stats))
	for i, s := range stats {
		list[i] = AttendanceResponse{
			EmployeeID:         s.EmployeeID,
			EmployeeName:       s.EmployeeName,
			WorkingDays:        s.WorkingDays,
			LeaveDays:          s.LeaveDays,
			AverageAchievement: s.AverageAchievement,
		}
	}
	return list
}

// CompleteListQuery selects the date for the complete report list view.
type CompleteListQuery struct {
	Date       string `form:"date" binding:"required,workdate"`
	Department string `form:"department"`
}

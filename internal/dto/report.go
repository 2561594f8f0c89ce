package dto

import (
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// ReportEntryRequest is one submitted work item.
type ReportEntryRequest struct {
	Date              string  `json:"date" binding:"required,workdate"`
	EmployeeName      string  `json:"employeeName" binding:"required"`
	EmployeeID        *string `json:"employeeID,omitempty"`
	Department        string  `json:"department"`
	WorkOverview      string  `json:"workOverview"`
	ProgressGoal      string  `json:"progressGoal"`
	AchievementRate   int     `json:"achievementRate" binding:"min=0"`
	ManagerEvaluation string  `json:"managerEvaluation"`
	Remarks           string  `json:"remarks"`
}

// SubmitReportsRequest carries a reconciliation batch for a single date.
// IsUpdate selects replace semantics; otherwise entries are plainly inserted.
type SubmitReportsRequest struct {
	Reports  []ReportEntryRequest `json:"reports" binding:"required,dive"`
	IsUpdate bool                 `json:"isUpdate"`
}

// ToReportEntry converts a submitted work item to the domain entity. IDs and
// audit fields are stamped by the service.
func (r ReportEntryRequest) ToReportEntry() domain.DailyReportEntry {
	return domain.DailyReportEntry{
		Date:              r.Date,
		EmployeeName:      r.EmployeeName,
		EmployeeID:        r.EmployeeID,
		Department:        r.Department,
		WorkOverview:      r.WorkOverview,
		ProgressGoal:      r.ProgressGoal,
		AchievementRate:   r.AchievementRate,
		ManagerEvaluation: r.ManagerEvaluation,
		Remarks:           r.Remarks,
	}
}

// ListReportsQuery narrows a report listing within the caller's scope.
type ListReportsQuery struct {
	Date       string `form:"date" binding:"omitempty,workdate"`
	From       string `form:"from" binding:"omitempty,workdate"`
	To         string `form:"to" binding:"omitempty,workdate"`
	Department string `form:"department"`
	Employee   string `form:"employee"`
}

// DeleteLegacyReportRequest identifies a historical entry without a durable
// row identifier by its content.
type DeleteLegacyReportRequest struct {
	Date         string `json:"date" binding:"required,workdate"`
	EmployeeName string `json:"employeeName" binding:"required"`
	WorkOverview string `json:"workOverview" binding:"required"`
}

// ReportResponse defines data returned for a daily report entry.
type ReportResponse struct {
	ReportID          string  `json:"reportID,omitempty"`
	Date              string  `json:"date"`
	EmployeeName      string  `json:"employeeName"`
	EmployeeID        *string `json:"employeeID,omitempty"`
	CompanyID         string  `json:"companyID"`
	Department        string  `json:"department"`
	WorkOverview      string  `json:"workOverview"`
	ProgressGoal      string  `json:"progressGoal"`
	AchievementRate   int     `json:"achievementRate"`
	ManagerEvaluation string  `json:"managerEvaluation"`
	Remarks           string  `json:"remarks"`
}

// ToReportResponse converts domain.DailyReportEntry to DTO.
func ToReportResponse(e *domain.DailyReportEntry) ReportResponse {
	return ReportResponse{
		ReportID:          e.ReportID,
		Date:              e.Date,
		EmployeeName:      e.EmployeeName,
		EmployeeID:        e.EmployeeID,
		CompanyID:         e.CompanyID,
		Department:        e.Department,
		WorkOverview:      e.WorkOverview,
		ProgressGoal:      e.ProgressGoal,
		AchievementRate:   e.AchievementRate,
		ManagerEvaluation: e.ManagerEvaluation,
		Remarks:           e.Remarks,
	}
}

// ListReportsResponse wraps a list of report entries.
type ListReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
}

// ToListReportsResponse converts a slice of domain.DailyReportEntry to DTO.
func ToListReportsResponse(es []domain.DailyReportEntry) ListReportsResponse {
	list := make([]ReportResponse, len(es))
	for i, e := range es {
		list[i] = ToReportResponse(&e)
	}
	return ListReportsResponse{Reports: list}
}

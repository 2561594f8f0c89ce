package dto

import (
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MissionKpiRequest is one measurable target attached to a mission.
type MissionKpiRequest struct {
	KpiName      string          `json:"kpiName" binding:"required"`
	TargetValue  decimal.Decimal `json:"targetValue"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	Unit         string          `json:"unit"`
}

// CreateMissionRequest defines data for creating a mission with its KPIs.
type CreateMissionRequest struct {
	MissionName  string              `json:"missionName" binding:"required"`
	Description  string              `json:"description"`
	Assignee     string              `json:"assignee"`
	Department   string              `json:"department" binding:"required"`
	CompanyID    string              `json:"companyID"`
	StartDate    string              `json:"startDate" binding:"omitempty,workdate"`
	EndDate      string              `json:"endDate" binding:"omitempty,workdate"`
	Status       string              `json:"status" binding:"required,oneof=대기 진행중 완료"`
	ProgressRate int                 `json:"progressRate" binding:"min=0,max=100"`
	Kpis         []MissionKpiRequest `json:"kpis" binding:"dive"`
}

// UpdateMissionRequest defines data for updating a mission. Nil fields are
// left unchanged; a non-nil Kpis slice replaces the KPI set.
type UpdateMissionRequest struct {
	MissionName  *string             `json:"missionName"`
	Description  *string             `json:"description"`
	Assignee     *string             `json:"assignee"`
	StartDate    *string             `json:"startDate" binding:"omitempty,workdate"`
	EndDate      *string             `json:"endDate" binding:"omitempty,workdate"`
	Status       *string             `json:"status" binding:"omitempty,oneof=대기 진행중 완료"`
	ProgressRate *int                `json:"progressRate" binding:"omitempty,min=0,max=100"`
	Kpis         []MissionKpiRequest `json:"kpis" binding:"dive"`
}

// ListMissionsQuery narrows a mission listing within the caller's scope.
type ListMissionsQuery struct {
	Department string `form:"department"`
	Assignee   string `form:"assignee"`
	Status     string `form:"status" binding:"omitempty,oneof=대기 진행중 완료"`
}

// MissionKpiResponse returns a KPI with its derived achievement figures. The
// bar width is clamped at 100 for display; the rate itself is not.
type MissionKpiResponse struct {
	KpiID           string          `json:"kpiID"`
	KpiName         string          `json:"kpiName"`
	TargetValue     decimal.Decimal `json:"targetValue"`
	CurrentValue    decimal.Decimal `json:"currentValue"`
	Unit            string          `json:"unit"`
	AchievementRate decimal.Decimal `json:"achievementRate"`
	DisplayBarWidth decimal.Decimal `json:"displayBarWidth"`
}

// MissionResponse defines data returned for a mission.
type MissionResponse struct {
	MissionID    string               `json:"missionID"`
	MissionName  string               `json:"missionName"`
	Description  string               `json:"description"`
	Assignee     string               `json:"assignee"`
	Department   string               `json:"department"`
	CompanyID    string               `json:"companyID"`
	StartDate    string               `json:"startDate"`
	EndDate      string               `json:"endDate"`
	Status       string               `json:"status"`
	ProgressRate int                  `json:"progressRate"`
	Kpis         []MissionKpiResponse `json:"kpis"`
}

// ToMissionResponse converts domain.Mission to DTO.
func ToMissionResponse(m *domain.Mission) MissionResponse {
	kpis := make([]MissionKpiResponse, len(m.Kpis))
	for i, k := range m.Kpis {
		kpis[i] = MissionKpiResponse{
			KpiID:           k.KpiID,
			KpiName:         k.KpiName,
			TargetValue:     k.TargetValue,
			CurrentValue:    k.CurrentValue,
			Unit:            k.Unit,
			AchievementRate: k.AchievementRate(),
			DisplayBarWidth: k.DisplayBarWidth(),
		}
	}
	return MissionResponse{
		MissionID:    m.MissionID,
		MissionName:  m.MissionName,
		Description:  m.Description,
		Assignee:     m.Assignee,
		Department:   m.Department,
		CompanyID:    m.CompanyID,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Status:       string(m.Status),
		ProgressRate: m.ProgressRate,
		Kpis:         kpis,
	}
}

// ListMissionsResponse wraps a list of missions.
type ListMissionsResponse struct {
	Missions []MissionResponse `json:"missions"`
}

// ToListMissionsResponse converts a slice of domain.Mission to DTO.
func ToListMissionsResponse(ms []domain.Mission) ListMissionsResponse {
	list := make([]MissionResponse, len(ms))
	for i, m := range ms {
		list[i] = ToMissionResponse(&m)
	}
	return ListMissionsResponse{Missions: list}
}

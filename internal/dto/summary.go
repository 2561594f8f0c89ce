package dto

import (
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// UpsertSummaryRequest writes the summary for (date, department).
type UpsertSummaryRequest struct {
	Date       string `json:"date" binding:"required,workdate"`
	Department string `json:"department" binding:"required"`
	Summary    string `json:"summary" binding:"required"`
}

// GenerateSummaryRequest asks for an LLM summary of the department's reports
// on a date.
type GenerateSummaryRequest struct {
	Date       string `json:"date" binding:"required,workdate"`
	Department string `json:"department" binding:"required"`
}

// GenerateSummaryResponse returns the generated text. Persisted is false when
// the text was produced but saving it failed; the output is still usable.
type GenerateSummaryResponse struct {
	Summary   string `json:"summary"`
	Persisted bool   `json:"persisted"`
}

// ListSummariesQuery narrows a summary listing within the caller's scope.
type ListSummariesQuery struct {
	Date       string `form:"date" binding:"omitempty,workdate"`
	From       string `form:"from" binding:"omitempty,workdate"`
	To         string `form:"to" binding:"omitempty,workdate"`
	Department string `form:"department"`
}

// SummaryResponse defines data returned for a department summary.
type SummaryResponse struct {
	Date       string `json:"date"`
	CompanyID  string `json:"companyID"`
	Department string `json:"department"`
	Summary    string `json:"summary"`
}

// ToSummaryResponse converts domain.DepartmentSummary to DTO.
func ToSummaryResponse(s *domain.DepartmentSummary) SummaryResponse {
	return SummaryResponse{
		Date:       s.Date,
		CompanyID:  s.CompanyID,
		Department: s.Department,
		Summary:    s.Summary,
	}
}

// ListSummariesResponse wraps a list of summaries.
type ListSummariesResponse struct {
	Summaries []SummaryResponse `json:"summaries"`
}

// ToListSummariesResponse converts a slice of domain.DepartmentSummary to DTO.
func ToListSummariesResponse(ss []domain.DepartmentSummary) ListSummariesResponse {
	list := make([]SummaryResponse, len(ss))
	for i, s := range ss {
		list[i] = ToSummaryResponse(&s)
	}
	return ListSummariesResponse{Summaries: list}
}

package dto

import (
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// CreateProjectRequest defines data for creating a project.
type CreateProjectRequest struct {
	ProjectName      string  `json:"projectName" binding:"required"`
	Department       string  `json:"department" binding:"required"`
	CompanyID        string  `json:"companyID"`
	Manager          string  `json:"manager"`
	TargetEndDate    string  `json:"targetEndDate" binding:"omitempty,workdate"`
	RevisedEndDate   *string `json:"revisedEndDate" binding:"omitempty,workdate"`
	Status           string  `json:"status"`
	ProgressRate     int     `json:"progressRate" binding:"min=0,max=100"`
	MainIssues       string  `json:"mainIssues"`
	DetailedProgress string  `json:"detailedProgress"`
}

// UpdateProjectRequest defines data for updating a project. Nil fields are
// left unchanged.
type UpdateProjectRequest struct {
	ProjectName      *string `json:"projectName"`
	Manager          *string `json:"manager"`
	TargetEndDate    *string `json:"targetEndDate" binding:"omitempty,workdate"`
	RevisedEndDate   *string `json:"revisedEndDate" binding:"omitempty,workdate"`
	Status           *string `json:"status"`
	ProgressRate     *int    `json:"progressRate" binding:"omitempty,min=0,max=100"`
	MainIssues       *string `json:"mainIssues"`
	DetailedProgress *string `json:"detailedProgress"`
}

// ListProjectsQuery narrows a project listing within the caller's scope.
type ListProjectsQuery struct {
	Department string `form:"department"`
	Status     string `form:"status"`
}

// ProjectResponse defines data returned for a project.
type ProjectResponse struct {
	ProjectID        string  `json:"projectID"`
	ProjectName      string  `json:"projectName"`
	Department       string  `json:"department"`
	CompanyID        string  `json:"companyID"`
	Manager          string  `json:"manager"`
	TargetEndDate    string  `json:"targetEndDate"`
	RevisedEndDate   *string `json:"revisedEndDate,omitempty"`
	Status           string  `json:"status"`
	ProgressRate     int     `json:"progressRate"`
	MainIssues       string  `json:"mainIssues"`
	DetailedProgress string  `json:"detailedProgress"`
}

// ToProjectResponse converts domain.Project to DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:        p.ProjectID,
		ProjectName:      p.ProjectName,
		Department:       p.Department,
		CompanyID:        p.CompanyID,
		Manager:          p.Manager,
		TargetEndDate:    p.TargetEndDate,
		RevisedEndDate:   p.RevisedEndDate,
		Status:           p.Status,
		ProgressRate:     p.ProgressRate,
		MainIssues:       p.MainIssues,
		DetailedProgress: p.DetailedProgress,
	}
}

// ListProjectsResponse wraps a list of projects.
type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ToListProjectsResponse converts a slice of domain.Project to DTO.
func ToListProjectsResponse(ps []domain.Project) ListProjectsResponse {
	list := make([]ProjectResponse, len(ps))
	for i, p := range ps {
		list[i] = ToProjectResponse(&p)
	}
	return ListProjectsResponse{Projects: list}
}

package dto

import (
	"time"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// CreateDepartmentRequest defines data for creating a department.
type CreateDepartmentRequest struct {
	Name      string `json:"name" binding:"required"`
	CompanyID string `json:"companyID" binding:"required"`
}

// UpdateDepartmentRequest defines data for renaming a department.
type UpdateDepartmentRequest struct {
	Name *string `json:"name"`
}

// DepartmentResponse defines data returned for a department.
type DepartmentResponse struct {
	DepartmentID  string    `json:"departmentID"`
	Name          string    `json:"name"`
	CompanyID     string    `json:"companyID"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToDepartmentResponse converts domain.Department to DTO.
func ToDepartmentResponse(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID:  d.DepartmentID,
		Name:          d.Name,
		CompanyID:     d.CompanyID,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ListDepartmentsResponse wraps a list of departments.
type ListDepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

// ToListDepartmentsResponse converts a slice of domain.Department to DTO.
func ToListDepartmentsResponse(ds []domain.Department) ListDepartmentsResponse {
	list := make([]DepartmentResponse, len(ds))
	for i, d := range ds {
		list[i] = ToDepartmentResponse(&d)
	}
	return ListDepartmentsResponse{Departments: list}
}

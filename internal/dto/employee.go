package dto

import (
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// CreateEmployeeRequest defines data for creating an employee. Company and
// department are overwritten server-side for manager callers.
type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employeeCode" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Position     string  `json:"position"`
	Department   string  `json:"department" binding:"required"`
	CompanyID    string  `json:"companyID" binding:"required"`
	Email        *string `json:"email,omitempty" binding:"omitempty,email"`
	Password     *string `json:"password,omitempty"`
	Role         string  `json:"role" binding:"required,oneof=operator company_manager manager user"`
}

// UpdateEmployeeRequest defines data for updating an employee. Nil fields are
// left unchanged.
type UpdateEmployeeRequest struct {
	EmployeeCode *string `json:"employeeCode"`
	Name         *string `json:"name"`
	Position     *string `json:"position"`
	Department   *string `json:"department"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Password     *string `json:"password"`
	Role         *string `json:"role" binding:"omitempty,oneof=operator company_manager manager user"`
}

// EmployeeResponse defines data returned for an employee. The password hash
// never leaves the service boundary.
type EmployeeResponse struct {
	EmployeeID   string  `json:"employeeID"`
	EmployeeCode string  `json:"employeeCode"`
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	Department   string  `json:"department"`
	CompanyID    string  `json:"companyID"`
	Email        *string `json:"email,omitempty"`
	Role         string  `json:"role"`
}

// ToEmployeeResponse converts domain.Employee to DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:   e.EmployeeID,
		EmployeeCode: e.EmployeeCode,
		Name:         e.Name,
		Position:     e.Position,
		Department:   e.Department,
		CompanyID:    e.CompanyID,
		Email:        e.Email,
		Role:         string(e.Role),
	}
}

// ListEmployeesResponse wraps a list of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToListEmployeesResponse converts a slice of domain.Employee to DTO.
func ToListEmployeesResponse(es []domain.Employee) ListEmployeesResponse {
	list := make([]EmployeeResponse, len(es))
	for i, e := range es {
		list[i] = ToEmployeeResponse(&e)
	}
	return ListEmployeesResponse{Employees: list}
}

package domain

// Company is the top-level tenancy boundary. Deleting a company is blocked by
// the store while employees still reference it.
type Company struct {
	CompanyID string `json:"companyID" db:"company_id"`
	Name      string `json:"name" db:"name"`
	AuditFields
}

// Department is scoped under exactly one company. Department names are unique
// within a company (enforced by the store).
type Department struct {
	DepartmentID string `json:"departmentID" db:"department_id"`
	Name         string `json:"name" db:"name"`
	CompanyID    string `json:"companyID" db:"company_id"`
	AuditFields
}

package domain

// Employee belongs to a company and department. The employee code is unique
// within a company, not globally. Employees with an email and password hash
// can log in; operators are not bound by company or department scoping.
type Employee struct {
	EmployeeID   string  `json:"employeeID" db:"employee_id"`
	EmployeeCode string  `json:"employeeCode" db:"employee_code"`
	Name         string  `json:"name" db:"name"`
	Position     string  `json:"position" db:"position"`
	Department   string  `json:"department" db:"department"`
	CompanyID    string  `json:"companyID" db:"company_id"`
	Email        *string `json:"email,omitempty" db:"email"`
	PasswordHash *string `json:"-" db:"password_hash"`
	Role         Role    `json:"role" db:"role"`
	AuditFields
}

// InScope reports whether the employee is visible under the given scope.
func (e Employee) InScope(s Scope) bool {
	if s.CompanyID != nil && e.CompanyID != *s.CompanyID {
		return false
	}
	if s.Department != nil && e.Department != *s.Department {
		return false
	}
	return true
}

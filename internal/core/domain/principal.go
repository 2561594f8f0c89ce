package domain

// Role defines the access level of an authenticated principal.
type Role string

const (
	RoleOperator       Role = "operator"
	RoleCompanyManager Role = "company_manager"
	RoleManager        Role = "manager"
	RoleUser           Role = "user"
)

// ValidRole reports whether r is one of the four known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleOperator, RoleCompanyManager, RoleManager, RoleUser:
		return true
	}
	return false
}

// Principal is the authenticated identity making a request. It is built from
// the employee record at login and frozen into the session token; later edits
// to the employee do not alter an already-issued session.
type Principal struct {
	UserID      string `json:"userID"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`
	CompanyID   string `json:"companyID"`
	CompanyName string `json:"companyName"`
	Department  string `json:"department,omitempty"`
}

// Scope is the (company, department) restriction derived from a principal's
// role. A nil field means unrestricted along that axis.
type Scope struct {
	CompanyID  *string
	Department *string
}

// Unbounded reports whether the scope restricts nothing (operator visibility).
func (s Scope) Unbounded() bool {
	return s.CompanyID == nil && s.Department == nil
}

// ResolveScope computes the read visibility scope for a principal.
// Operators see everything; company managers and managers see their whole
// company; users see only their own department.
func ResolveScope(p Principal) Scope {
	switch p.Role {
	case RoleOperator:
		return Scope{}
	case RoleCompanyManager, RoleManager:
		companyID := p.CompanyID
		return Scope{CompanyID: &companyID}
	default:
		companyID := p.CompanyID
		department := p.Department
		return Scope{CompanyID: &companyID, Department: &department}
	}
}

// ResolveWriteScope computes the scope forced onto employee mutations.
// Managers may only write within their own department, so the department is
// pinned here even when the caller supplied a different value.
func ResolveWriteScope(p Principal) Scope {
	if p.Role == RoleManager {
		companyID := p.CompanyID
		department := p.Department
		return Scope{CompanyID: &companyID, Department: &department}
	}
	return ResolveScope(p)
}

// Authorize reports whether the principal is present and holds one of the
// allowed roles. It never returns an error; callers translate false into the
// appropriate rejection.
func Authorize(p *Principal, allowed ...Role) bool {
	if p == nil {
		return false
	}
	for _, role := range allowed {
		if p.Role == role {
			return true
		}
	}
	return false
}

// Narrow layers an optional client-requested department filter on top of the
// role-derived scope. The request can only narrow visibility, never widen it:
// a scope already pinned to a department ignores the request entirely.
func (s Scope) Narrow(department string) Scope {
	if department == "" || s.Department != nil {
		return s
	}
	narrowed := s
	narrowed.Department = &department
	return narrowed
}

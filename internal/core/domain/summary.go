package domain

// DepartmentSummary is the daily per-department roll-up, authored manually or
// generated. Natural key (date, department): at most one row per key.
type DepartmentSummary struct {
	SummaryID  string `json:"summaryID" db:"summary_id"`
	Date       string `json:"date" db:"summary_date"`
	CompanyID  string `json:"companyID" db:"company_id"`
	Department string `json:"department" db:"department"`
	Summary    string `json:"summary" db:"summary"`
	AuditFields
}

package domain

// Project tracks department project progress. Projects have an independent
// lifecycle and are not owned by any other entity.
type Project struct {
	ProjectID        string  `json:"projectID" db:"project_id"`
	ProjectName      string  `json:"projectName" db:"project_name"`
	Department       string  `json:"department" db:"department"`
	CompanyID        string  `json:"companyID" db:"company_id"`
	Manager          string  `json:"manager" db:"manager"`
	TargetEndDate    string  `json:"targetEndDate" db:"target_end_date"`
	RevisedEndDate   *string `json:"revisedEndDate,omitempty" db:"revised_end_date"`
	Status           string  `json:"status" db:"status"`
	ProgressRate     int     `json:"progressRate" db:"progress_rate"`
	MainIssues       string  `json:"mainIssues" db:"main_issues"`
	DetailedProgress string  `json:"detailedProgress" db:"detailed_progress"`
	AuditFields
}

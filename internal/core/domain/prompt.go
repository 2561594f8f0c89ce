package domain

// Prompt is an operator-editable system prompt used by summary generation.
type Prompt struct {
	PromptID string `json:"promptID" db:"prompt_id"`
	Name     string `json:"name" db:"name"`
	Content  string `json:"content" db:"content"`
	AuditFields
}

// PromptDepartmentSummary names the prompt row consulted when generating a
// department summary.
const PromptDepartmentSummary = "department_summary"

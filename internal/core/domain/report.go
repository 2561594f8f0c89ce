package domain

// DateLayout is the civil-date format used for report and summary keys.
const DateLayout = "2006-01-02"

const (
	// WorkOverviewAnnualLeave marks an employee on annual leave for the date.
	// A leave entry suppresses the "at least one field filled" rule and must
	// be the employee's only entry for that date.
	WorkOverviewAnnualLeave = "연차"

	// WorkOverviewNotSubmitted is a synthetic placeholder produced at read
	// time for employees without a report on a date. It is never persisted.
	WorkOverviewNotSubmitted = "작성 안됨"
)

// DailyReportEntry is one work item submitted by an employee for a date.
// EmployeeID may be absent on legacy records; reconciliation then falls back
// to the employee name.
type DailyReportEntry struct {
	ReportID          string  `json:"reportID" db:"report_id"`
	Date              string  `json:"date" db:"report_date"`
	EmployeeName      string  `json:"employeeName" db:"employee_name"`
	EmployeeID        *string `json:"employeeID,omitempty" db:"employee_id"`
	CompanyID         string  `json:"companyID" db:"company_id"`
	Department        string  `json:"department" db:"department"`
	WorkOverview      string  `json:"workOverview" db:"work_overview"`
	ProgressGoal      string  `json:"progressGoal" db:"progress_goal"`
	AchievementRate   int     `json:"achievementRate" db:"achievement_rate"`
	ManagerEvaluation string  `json:"managerEvaluation" db:"manager_evaluation"`
	Remarks           string  `json:"remarks" db:"remarks"`
	AuditFields
}

// IsAnnualLeave reports whether the entry is the annual-leave sentinel.
func (e DailyReportEntry) IsAnnualLeave() bool {
	return e.WorkOverview == WorkOverviewAnnualLeave
}

// IsPlaceholder reports whether the entry is a read-time "not submitted" row.
func (e DailyReportEntry) IsPlaceholder() bool {
	return e.WorkOverview == WorkOverviewNotSubmitted
}

// Blank reports whether the entry carries no content at all. Blank entries
// are dropped before reconciliation rather than stored.
func (e DailyReportEntry) Blank() bool {
	return e.WorkOverview == "" && e.ProgressGoal == "" && e.ManagerEvaluation == "" && e.Remarks == ""
}

// identityKey returns the reconciliation identity of the entry: the employee
// ID when present, otherwise the employee name.
func (e DailyReportEntry) identityKey() string {
	if e.EmployeeID != nil && *e.EmployeeID != "" {
		return *e.EmployeeID
	}
	return e.EmployeeName
}

// BatchIdentityKind tags how a whole reconciliation batch is matched against
// stored rows.
type BatchIdentityKind int

const (
	// BatchByEmployeeID matches on (date, employee_id).
	BatchByEmployeeID BatchIdentityKind = iota
	// BatchByEmployeeName matches on (date, employee_name), the fallback for
	// legacy records without a durable identifier.
	BatchByEmployeeName
)

// BatchIdentity is the identity strategy for one reconciliation batch. The
// strategy is chosen once for the entire batch, never per entry, so a single
// replace operation never mixes ID-based and name-based matching.
type BatchIdentity struct {
	Kind          BatchIdentityKind
	EmployeeIDs   []string
	EmployeeNames []string
}

// ResolveBatchIdentity picks the identity strategy for a batch: ID-based only
// when every entry carries an employee ID, name-based otherwise.
func ResolveBatchIdentity(entries []DailyReportEntry) BatchIdentity {
	byID := len(entries) > 0
	for _, e := range entries {
		if e.EmployeeID == nil || *e.EmployeeID == "" {
			byID = false
			break
		}
	}

	if byID {
		ids := make([]string, 0, len(entries))
		seen := map[string]bool{}
		for _, e := range entries {
			if !seen[*e.EmployeeID] {
				seen[*e.EmployeeID] = true
				ids = append(ids, *e.EmployeeID)
			}
		}
		return BatchIdentity{Kind: BatchByEmployeeID, EmployeeIDs: ids}
	}

	names := make([]string, 0, len(entries))
	seen := map[string]bool{}
	for _, e := range entries {
		if !seen[e.EmployeeName] {
			seen[e.EmployeeName] = true
			names = append(names, e.EmployeeName)
		}
	}
	return BatchIdentity{Kind: BatchByEmployeeName, EmployeeNames: names}
}

// ValidateReportBatch checks the invariants of an incoming batch after blank
// entries were filtered out: a single date across the batch, non-negative
// achievement rates, and leave exclusivity (an employee on annual leave has
// no other entry for the date). An empty batch is invalid: it means every
// employee in the submission was blank and not on leave.
func ValidateReportBatch(entries []DailyReportEntry) error {
	if len(entries) == 0 {
		return ErrEmptyReportBatch
	}

	date := entries[0].Date
	leave := map[string]bool{}
	regular := map[string]bool{}
	for _, e := range entries {
		if e.Date != date {
			return ErrMixedReportDates
		}
		if e.AchievementRate < 0 {
			return ErrNegativeAchievement
		}
		if e.IsPlaceholder() {
			return ErrPlaceholderSubmitted
		}
		if e.IsAnnualLeave() {
			leave[e.identityKey()] = true
		} else {
			regular[e.identityKey()] = true
		}
	}
	for key := range leave {
		if regular[key] {
			return ErrLeaveConflict
		}
	}
	return nil
}

// FilterBlank drops entries with no content. Blank items are an expected part
// of the submission form and are silently excluded, not rejected.
func FilterBlank(entries []DailyReportEntry) []DailyReportEntry {
	kept := make([]DailyReportEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Blank() {
			kept = append(kept, e)
		}
	}
	return kept
}

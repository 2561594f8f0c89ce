package repositories

// RepositoryProvider bundles every repository implementation handed to the
// service container at startup.
type RepositoryProvider struct {
	CompanyRepo    CompanyRepository
	DepartmentRepo DepartmentRepository
	EmployeeRepo   EmployeeRepository
	ReportRepo     ReportRepository
	SummaryRepo    SummaryRepository
	MissionRepo    MissionRepository
	ProjectRepo    ProjectRepository
	PromptRepo     PromptRepository
}

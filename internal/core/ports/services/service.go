package services

// ServiceContainer bundles every service facade handed to the HTTP layer.
type ServiceContainer struct {
	Auth       AuthSvcFacade
	Company    CompanySvcFacade
	Department DepartmentSvcFacade
	Employee   EmployeeSvcFacade
	Report     ReportSvcFacade
	Summary    SummarySvcFacade
	Mission    MissionSvcFacade
	Project    ProjectSvcFacade
	Prompt     PromptSvcFacade
	Analytics  AnalyticsSvcFacade
}

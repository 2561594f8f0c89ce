package services

import (
	portsrepo "github.com/alisyos/daily-report-sub000/internal/core/ports/repositories"
	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/platform/config"
	"github.com/alisyos/daily-report-sub000/internal/platform/llm"
)

// NewServiceContainer wires every service implementation to its repositories.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, generator llm.Generator) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:       NewAuthService(repos.EmployeeRepo, repos.CompanyRepo, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer),
		Company:    NewCompanyService(repos.CompanyRepo),
		Department: NewDepartmentService(repos.DepartmentRepo),
		Employee:   NewEmployeeService(repos.EmployeeRepo),
		Report:     NewReportService(repos.ReportRepo, repos.EmployeeRepo),
		Summary:    NewSummaryService(repos.SummaryRepo, repos.ReportRepo, repos.PromptRepo, generator),
		Mission:    NewMissionService(repos.MissionRepo),
		Project:    NewProjectService(repos.ProjectRepo),
		Prompt:     NewPromptService(repos.PromptRepo),
		Analytics:  NewAnalyticsService(repos.ReportRepo),
	}
}

package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alisyos/daily-report-sub000/internal/apperrors"
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	portsrepo "github.com/alisyos/daily-report-sub000/internal/core/ports/repositories"
	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

// projectService implements the ProjectSvcFacade interface.
type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepository
}

// NewProjectService creates a new project service with the provided repository.
func NewProjectService(projectRepo portsrepo.ProjectRepository) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: projectRepo}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, principal *domain.Principal, req dto.CreateProjectRequest) (*domain.Project, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator, domain.RoleCompanyManager, domain.RoleManager); err != nil {
		return nil, err
	}

	project := domain.Project{
		ProjectID:        uuid.NewString(),
		ProjectName:      req.ProjectName,
		Department:       req.Department,
		CompanyID:        req.CompanyID,
		Manager:          req.Manager,
		TargetEndDate:    req.TargetEndDate,
		RevisedEndDate:   req.RevisedEndDate,
		Status:           req.Status,
		ProgressRate:     req.ProgressRate,
		MainIssues:       req.MainIssues,
		DetailedProgress: req.DetailedProgress,
		AuditFields:      stampAudit(principal),
	}
	writeScope := domain.ResolveWriteScope(*principal)
	if writeScope.CompanyID != nil {
		project.CompanyID = *writeScope.CompanyID
	}
	if writeScope.Department != nil {
		project.Department = *writeScope.Department
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("name", req.ProjectName))
		return nil, err
	}
	s.LogInfo(ctx, "Project created", slog.String("project_id", project.ProjectID))
	return &project, nil
}

func (s *projectService) ListProjects(ctx context.Context, principal *domain.Principal, q dto.ListProjectsQuery) ([]domain.Project, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	scope := domain.ResolveScope(*principal).Narrow(q.Department)
	filter := portsrepo.ProjectFilter{
		CompanyID:  scope.CompanyID,
		Department: scope.Department,
	}
	if q.Status != "" {
		filter.Status = &q.Status
	}

	projects, err := s.projectRepo.ListProjects(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects")
		return nil, err
	}
	return projects, nil
}

// projectInScope treats out-of-scope projects as missing.
func projectInScope(p *domain.Project, scope domain.Scope) error {
	if scope.CompanyID != nil && p.CompanyID != *scope.CompanyID {
		return apperrors.ErrNotFound
	}
	if scope.Department != nil && p.Department != *scope.Department {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *projectService) GetProject(ctx context.Context, principal *domain.Principal, projectID string) (*domain.Project, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := projectInScope(project, domain.ResolveScope(*principal)); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) UpdateProject(ctx context.Context, principal *domain.Principal, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator, domain.RoleCompanyManager, domain.RoleManager); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := projectInScope(project, domain.ResolveWriteScope(*principal)); err != nil {
		return nil, err
	}

	if req.ProjectName != nil {
		project.ProjectName = *req.ProjectName
	}
	if req.Manager != nil {
		project.Manager = *req.Manager
	}
	if req.TargetEndDate != nil {
		project.TargetEndDate = *req.TargetEndDate
	}
	if req.RevisedEndDate != nil {
		project.RevisedEndDate = req.RevisedEndDate
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.ProgressRate != nil {
		project.ProgressRate = *req.ProgressRate
	}
	if req.MainIssues != nil {
		project.MainIssues = *req.MainIssues
	}
	if req.DetailedProgress != nil {
		project.DetailedProgress = *req.DetailedProgress
	}
	touchAudit(&project.AuditFields, principal)

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, err
	}
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, principal *domain.Principal, projectID string) error {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator, domain.RoleCompanyManager, domain.RoleManager); err != nil {
		return err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return err
	}
	if err := projectInScope(project, domain.ResolveWriteScope(*principal)); err != nil {
		return err
	}

	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		return err
	}
	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID))
	return nil
}

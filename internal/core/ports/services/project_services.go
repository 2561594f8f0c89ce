package services

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

// ProjectSvcFacade manages projects within the caller's scope.
type ProjectSvcFacade interface {
	CreateProject(ctx context.Context, principal *domain.Principal, req dto.CreateProjectRequest) (*domain.Project, error)
	ListProjects(ctx context.Context, principal *domain.Principal, q dto.ListProjectsQuery) ([]domain.Project, error)
	GetProject(ctx context.Context, principal *domain.Principal, projectID string) (*domain.Project, error)
	UpdateProject(ctx context.Context, principal *domain.Principal, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error)
	DeleteProject(ctx context.Context, principal *domain.Principal, projectID string) error
}

package repositories

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// ProjectFilter restricts project listing. Nil fields are unrestricted.
type ProjectFilter struct {
	CompanyID  *string
	Department *string
	Status     *string
}

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, filter ProjectFilter) ([]domain.Project, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	SaveProject(ctx context.Context, project domain.Project) error
	UpdateProject(ctx context.Context, project domain.Project) error
	DeleteProject(ctx context.Context, projectID string) error
}

// ProjectRepository combines all project repository interfaces.
type ProjectRepository interface {
	ProjectReader
	ProjectWriter
}

package repositories

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// MissionFilter restricts mission listing. Nil fields are unrestricted.
type MissionFilter struct {
	CompanyID  *string
	Department *string
	Assignee   *string
	Status     *domain.MissionStatus
}

// MissionReader defines read operations for missions and their KPIs.
type MissionReader interface {
	FindMissionByID(ctx context.Context, missionID string) (*domain.Mission, error)
	ListMissions(ctx context.Context, filter MissionFilter) ([]domain.Mission, error)
}

// MissionWriter defines write operations for missions. Saving persists the
// mission and its KPI rows together; deleting a mission cascades to its KPIs.
type MissionWriter interface {
	SaveMission(ctx context.Context, mission domain.Mission) error
	UpdateMission(ctx context.Context, mission domain.Mission) error
	DeleteMission(ctx context.Context, missionID string) error
}

// MissionRepository combines all mission repository interfaces.
type MissionRepository interface {
	MissionReader
	MissionWriter
}

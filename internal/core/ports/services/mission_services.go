package services

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

// MissionSvcFacade manages missions and their KPIs within the caller's scope.
type MissionSvcFacade interface {
	CreateMission(ctx context.Context, principal *domain.Principal, req dto.CreateMissionRequest) (*domain.Mission, error)
	ListMissions(ctx context.Context, principal *domain.Principal, q dto.ListMissionsQuery) ([]domain.Mission, error)
	GetMission(ctx context.Context, principal *domain.Principal, missionID string) (*domain.Mission, error)
	UpdateMission(ctx context.Context, principal *domain.Principal, missionID string, req dto.UpdateMissionRequest) (*domain.Mission, error)
	DeleteMission(ctx context.Context, principal *domain.Principal, missionID string) error
}

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alisyos/daily-report-sub000/internal/apperrors"
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	portsrepo "github.com/alisyos/daily-report-sub000/internal/core/ports/repositories"
	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

// missionService implements the MissionSvcFacade interface.
type missionService struct {
	BaseService
	missionRepo portsrepo.MissionRepository
}

// NewMissionService creates a new mission service with the provided repository.
func NewMissionService(missionRepo portsrepo.MissionRepository) portssvc.MissionSvcFacade {
	return &missionService{missionRepo: missionRepo}
}

var _ portssvc.MissionSvcFacade = (*missionService)(nil)

func (s *missionService) CreateMission(ctx context.Context, principal *domain.Principal, req dto.CreateMissionRequest) (*domain.Mission, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator, domain.RoleCompanyManager, domain.RoleManager); err != nil {
		return nil, err
	}

	status := domain.MissionStatus(req.Status)
	if !domain.ValidMissionStatus(status) {
		return nil, fmt.Errorf("%w: unknown mission status %q", apperrors.ErrValidation, req.Status)
	}

	mission := domain.Mission{
		MissionID:    uuid.NewString(),
		MissionName:  req.MissionName,
		Description:  req.Description,
		Assignee:     req.Assignee,
		Department:   req.Department,
		CompanyID:    req.CompanyID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Status:       status,
		ProgressRate: req.ProgressRate,
		AuditFields:  stampAudit(principal),
	}
	writeScope := domain.ResolveWriteScope(*principal)
	if writeScope.CompanyID != nil {
		mission.CompanyID = *writeScope.CompanyID
	}
	if writeScope.Department != nil {
		mission.Department = *writeScope.Department
	}

	mission.Kpis = make([]domain.MissionKpi, len(req.Kpis))
	for i, k := range req.Kpis {
		mission.Kpis[i] = domain.MissionKpi{
			KpiID:        uuid.NewString(),
			MissionID:    mission.MissionID,
			KpiName:      k.KpiName,
			TargetValue:  k.TargetValue,
			CurrentValue: k.CurrentValue,
			Unit:         k.Unit,
		}
	}

	if err := s.missionRepo.SaveMission(ctx, mission); err != nil {
		s.LogError(ctx, err, "Failed to save mission", slog.String("name", req.MissionName))
		return nil, err
	}
	s.LogInfo(ctx, "Mission created",
		slog.String("mission_id", mission.MissionID),
		slog.Int("kpis", len(mission.Kpis)))
	return &mission, nil
}

func (s *missionService) ListMissions(ctx context.Context, principal *domain.Principal, q dto.ListMissionsQuery) ([]domain.Mission, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	scope := domain.ResolveScope(*principal).Narrow(q.Department)
	filter := portsrepo.MissionFilter{
		CompanyID:  scope.CompanyID,
		Department: scope.Department,
	}
	if q.Assignee != "" {
		filter.Assignee = &q.Assignee
	}
	if q.Status != "" {
		status := domain.MissionStatus(q.Status)
		filter.Status = &status
	}

	missions, err := s.missionRepo.ListMissions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list missions")
		return nil, err
	}
	return missions, nil
}

// missionInScope treats out-of-scope missions as missing.
func missionInScope(m *domain.Mission, scope domain.Scope) error {
	if scope.CompanyID != nil && m.CompanyID != *scope.CompanyID {
		return apperrors.ErrNotFound
	}
	if scope.Department != nil && m.Department != *scope.Department {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *missionService) GetMission(ctx context.Context, principal *domain.Principal, missionID string) (*domain.Mission, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	mission, err := s.missionRepo.FindMissionByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if err := missionInScope(mission, domain.ResolveScope(*principal)); err != nil {
		return nil, err
	}
	return mission, nil
}

func (s *missionService) UpdateMission(ctx context.Context, principal *domain.Principal, missionID string, req dto.UpdateMissionRequest) (*domain.Mission, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator, domain.RoleCompanyManager, domain.RoleManager); err != nil {
		return nil, err
	}

	mission, err := s.missionRepo.FindMissionByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if err := missionInScope(mission, domain.ResolveWriteScope(*principal)); err != nil {
		return nil, err
	}

	if req.MissionName != nil {
		mission.MissionName = *req.MissionName
	}
	if req.Description != nil {
		mission.Description = *req.Description
	}
	if req.Assignee != nil {
		mission.Assignee = *req.Assignee
	}
	if req.StartDate != nil {
		mission.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		mission.EndDate = *req.EndDate
	}
	if req.Status != nil {
		status := domain.MissionStatus(*req.Status)
		if !domain.ValidMissionStatus(status) {
			return nil, fmt.Errorf("%w: unknown mission status %q", apperrors.ErrValidation, *req.Status)
		}
		mission.Status = status
	}
	if req.ProgressRate != nil {
		mission.ProgressRate = *req.ProgressRate
	}
	if req.Kpis != nil {
		mission.Kpis = make([]domain.MissionKpi, len(req.Kpis))
		for i, k := range req.Kpis {
			mission.Kpis[i] = domain.MissionKpi{
				KpiID:        uuid.NewString(),
				MissionID:    mission.MissionID,
				KpiName:      k.KpiName,
				TargetValue:  k.TargetValue,
				CurrentValue: k.CurrentValue,
				Unit:         k.Unit,
			}
		}
	}
	touchAudit(&mission.AuditFields, principal)

	if err := s.missionRepo.UpdateMission(ctx, *mission); err != nil {
		s.LogError(ctx, err, "Failed to update mission", slog.String("mission_id", missionID))
		return nil, err
	}
	return mission, nil
}

func (s *missionService) DeleteMission(ctx context.Context, principal *domain.Principal, missionID string) error {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator, domain.RoleCompanyManager, domain.RoleManager); err != nil {
		return err
	}

	mission, err := s.missionRepo.FindMissionByID(ctx, missionID)
	if err != nil {
		return err
	}
	if err := missionInScope(mission, domain.ResolveWriteScope(*principal)); err != nil {
		return err
	}

	if err := s.missionRepo.DeleteMission(ctx, missionID); err != nil {
		s.LogError(ctx, err, "Failed to delete mission", slog.String("mission_id", missionID))
		return err
	}
	s.LogInfo(ctx, "Mission deleted", slog.String("mission_id", missionID))
	return nil
}

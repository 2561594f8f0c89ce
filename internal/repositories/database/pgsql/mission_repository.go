package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alisyos/daily-report-sub000/internal/apperrors"
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	portsrepo "github.com/alisyos/daily-report-sub000/internal/core/ports/repositories"
)

type PgxMissionRepository struct {
	BaseRepository
}

// newPgxMissionRepository creates a new repository for missions and KPIs.
func newPgxMissionRepository(pool *pgxpool.Pool) portsrepo.MissionRepository {
	return &PgxMissionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MissionRepository = (*PgxMissionRepository)(nil)

const missionColumns = `mission_id, mission_name, description, assignee, department, company_id, start_date, end_date, status, progress_rate, created_at, created_by, last_updated_at, last_updated_by`

func scanMission(row pgx.Row) (domain.Mission, error) {
	var m domain.Mission
	err := row.Scan(
		&m.MissionID,
		&m.MissionName,
		&m.Description,
		&m.Assignee,
		&m.Department,
		&m.CompanyID,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.ProgressRate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func insertKpisTx(ctx context.Context, tx pgx.Tx, kpis []domain.MissionKpi) error {
	query := `
		INSERT INTO mission_kpis (kpi_id, mission_id, kpi_name, target_value, current_value, unit)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, k := range kpis {
		_, err := tx.Exec(ctx, query, k.KpiID, k.MissionID, k.KpiName, k.TargetValue, k.CurrentValue, k.Unit)
		if err != nil {
			return fmt.Errorf("failed to insert kpi %s: %w", k.KpiID, translateErr(err))
		}
	}
	return nil
}

// SaveMission persists the mission and its KPI rows in one transaction.
func (r *PgxMissionRepository) SaveMission(ctx context.Context, mission domain.Mission) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO missions (` + missionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, query,
		mission.MissionID,
		mission.MissionName,
		mission.Description,
		mission.Assignee,
		mission.Department,
		mission.CompanyID,
		mission.StartDate,
		mission.EndDate,
		mission.Status,
		mission.ProgressRate,
		mission.CreatedAt,
		mission.CreatedBy,
		mission.LastUpdatedAt,
		mission.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save mission %s: %w", mission.MissionID, translateErr(err))
	}
	if err := insertKpisTx(ctx, tx, mission.Kpis); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// loadKpis fetches KPI rows for the given mission IDs, grouped by mission.
func (r *PgxMissionRepository) loadKpis(ctx context.Context, missionIDs []string) (map[string][]domain.MissionKpi, error) {
	query := `
		SELECT kpi_id, mission_id, kpi_name, target_value, current_value, unit
		FROM mission_kpis
		WHERE mission_id = ANY($1)
		ORDER BY kpi_name;
	`
	rows, err := r.Pool.Query(ctx, query, missionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query kpis: %w", err)
	}
	defer rows.Close()

	grouped := map[string][]domain.MissionKpi{}
	for rows.Next() {
		var k domain.MissionKpi
		if err := rows.Scan(&k.KpiID, &k.MissionID, &k.KpiName, &k.TargetValue, &k.CurrentValue, &k.Unit); err != nil {
			return nil, fmt.Errorf("failed to scan kpi: %w", err)
		}
		grouped[k.MissionID] = append(grouped[k.MissionID], k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read kpis: %w", err)
	}
	return grouped, nil
}

// FindMissionByID retrieves a mission with its KPIs.
func (r *PgxMissionRepository) FindMissionByID(ctx context.Context, missionID string) (*domain.Mission, error) {
	query := `SELECT ` + missionColumns + ` FROM missions WHERE mission_id = $1;`
	mission, err := scanMission(r.Pool.QueryRow(ctx, query, missionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find mission %s: %w", missionID, err)
	}

	kpis, err := r.loadKpis(ctx, []string{missionID})
	if err != nil {
		return nil, err
	}
	mission.Kpis = kpis[missionID]
	return &mission, nil
}

// ListMissions retrieves missions matching the filter with their KPIs.
func (r *PgxMissionRepository) ListMissions(ctx context.Context, filter portsrepo.MissionFilter) ([]domain.Mission, error) {
	query := `SELECT ` + missionColumns + ` FROM missions WHERE 1=1`
	args := []any{}
	add := func(clause string, value any) {
		args = append(args, value)
		query += fmt.Sprintf(clause, len(args))
	}
	if filter.CompanyID != nil {
		add(` AND company_id = $%d`, *filter.CompanyID)
	}
	if filter.Department != nil {
		add(` AND department = $%d`, *filter.Department)
	}
	if filter.Assignee != nil {
		add(` AND assignee = $%d`, *filter.Assignee)
	}
	if filter.Status != nil {
		add(` AND status = $%d`, *filter.Status)
	}
	query += ` ORDER BY start_date DESC, mission_name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query missions: %w", err)
	}
	defer rows.Close()

	missions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Mission, error) {
		return scanMission(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan missions: %w", err)
	}
	if len(missions) == 0 {
		return missions, nil
	}

	ids := make([]string, len(missions))
	for i, m := range missions {
		ids[i] = m.MissionID
	}
	grouped, err := r.loadKpis(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range missions {
		missions[i].Kpis = grouped[missions[i].MissionID]
	}
	return missions, nil
}

// UpdateMission updates the mission row and replaces its KPI set in one
// transaction.
func (r *PgxMissionRepository) UpdateMission(ctx context.Context, mission domain.Mission) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE missions
		SET mission_name = $2, description = $3, assignee = $4, start_date = $5, end_date = $6, status = $7, progress_rate = $8, last_updated_at = $9, last_updated_by = $10
		WHERE mission_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		mission.MissionID,
		mission.MissionName,
		mission.Description,
		mission.Assignee,
		mission.StartDate,
		mission.EndDate,
		mission.Status,
		mission.ProgressRate,
		mission.LastUpdatedAt,
		mission.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update mission %s: %w", mission.MissionID, translateErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM mission_kpis WHERE mission_id = $1;`, mission.MissionID); err != nil {
		return fmt.Errorf("failed to clear kpis for mission %s: %w", mission.MissionID, err)
	}
	if err := insertKpisTx(ctx, tx, mission.Kpis); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// DeleteMission removes a mission; the KPI foreign key cascades.
func (r *PgxMissionRepository) DeleteMission(ctx context.Context, missionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM missions WHERE mission_id = $1;`, missionID)
	if err != nil {
		return fmt.Errorf("failed to delete mission %s: %w", missionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

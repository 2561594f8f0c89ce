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

type PgxPromptRepository struct {
	BaseRepository
}

// newPgxPromptRepository creates a new repository for prompt data.
func newPgxPromptRepository(pool *pgxpool.Pool) portsrepo.PromptRepository {
	return &PgxPromptRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PromptRepository = (*PgxPromptRepository)(nil)

const promptColumns = `prompt_id, name, content, created_at, created_by, last_updated_at, last_updated_by`

func scanPrompt(row pgx.Row) (domain.Prompt, error) {
	var p domain.Prompt
	err := row.Scan(
		&p.PromptID,
		&p.Name,
		&p.Content,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

// SavePrompt inserts a new prompt. Names are unique.
func (r *PgxPromptRepository) SavePrompt(ctx context.Context, prompt domain.Prompt) error {
	query := `
		INSERT INTO prompts (prompt_id, name, content, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		prompt.PromptID,
		prompt.Name,
		prompt.Content,
		prompt.CreatedAt,
		prompt.CreatedBy,
		prompt.LastUpdatedAt,
		prompt.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save prompt %s: %w", prompt.PromptID, translateErr(err))
	}
	return nil
}

// FindPromptByName retrieves a prompt by its unique name.
func (r *PgxPromptRepository) FindPromptByName(ctx context.Context, name string) (*domain.Prompt, error) {
	query := `SELECT ` + promptColumns + ` FROM prompts WHERE name = $1;`
	prompt, err := scanPrompt(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find prompt %s: %w", name, err)
	}
	return &prompt, nil
}

// ListPrompts retrieves all prompts ordered by name.
func (r *PgxPromptRepository) ListPrompts(ctx context.Context) ([]domain.Prompt, error) {
	query := `SELECT ` + promptColumns + ` FROM prompts ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query prompts: %w", err)
	}
	defer rows.Close()

	prompts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Prompt, error) {
		return scanPrompt(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan prompts: %w", err)
	}
	return prompts, nil
}

// UpdatePrompt updates a prompt's content.
func (r *PgxPromptRepository) UpdatePrompt(ctx context.Context, prompt domain.Prompt) error {
	query := `
		UPDATE prompts
		SET content = $2, last_updated_at = $3, last_updated_by = $4
		WHERE prompt_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		prompt.PromptID,
		prompt.Content,
		prompt.LastUpdatedAt,
		prompt.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update prompt %s: %w", prompt.PromptID, translateErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePrompt removes a prompt.
func (r *PgxPromptRepository) DeletePrompt(ctx context.Context, promptID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM prompts WHERE prompt_id = $1;`, promptID)
	if err != nil {
		return fmt.Errorf("failed to delete prompt %s: %w", promptID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

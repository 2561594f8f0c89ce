package repositories

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// PromptReader defines read operations for prompts.
type PromptReader interface {
	FindPromptByName(ctx context.Context, name string) (*domain.Prompt, error)
	ListPrompts(ctx context.Context) ([]domain.Prompt, error)
}

// PromptWriter defines write operations for prompts.
type PromptWriter interface {
	SavePrompt(ctx context.Context, prompt domain.Prompt) error
	UpdatePrompt(ctx context.Context, prompt domain.Prompt) error
	DeletePrompt(ctx context.Context, promptID string) error
}

// PromptRepository combines all prompt repository interfaces.
type PromptRepository interface {
	PromptReader
	PromptWriter
}

package services

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

// PromptSvcFacade manages the prompts used by summary generation. Operator
// only.
type PromptSvcFacade interface {
	CreatePrompt(ctx context.Context, principal *domain.Principal, req dto.CreatePromptRequest) (*domain.Prompt, error)
	ListPrompts(ctx context.Context, principal *domain.Principal) ([]domain.Prompt, error)
	UpdatePrompt(ctx context.Context, principal *domain.Principal, promptID string, req dto.UpdatePromptRequest) (*domain.Prompt, error)
	DeletePrompt(ctx context.Context, principal *domain.Principal, promptID string) error
}

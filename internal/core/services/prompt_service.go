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

// promptService implements the PromptSvcFacade interface.
type promptService struct {
	BaseService
	promptRepo portsrepo.PromptRepository
}

// NewPromptService creates a new prompt service with the provided repository.
func NewPromptService(promptRepo portsrepo.PromptRepository) portssvc.PromptSvcFacade {
	return &promptService{promptRepo: promptRepo}
}

var _ portssvc.PromptSvcFacade = (*promptService)(nil)

func (s *promptService) CreatePrompt(ctx context.Context, principal *domain.Principal, req dto.CreatePromptRequest) (*domain.Prompt, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator); err != nil {
		return nil, err
	}

	if _, err := s.promptRepo.FindPromptByName(ctx, req.Name); err == nil {
		return nil, apperrors.ErrDuplicate
	}

	prompt := domain.Prompt{
		PromptID:    uuid.NewString(),
		Name:        req.Name,
		Content:     req.Content,
		AuditFields: stampAudit(principal),
	}
	if err := s.promptRepo.SavePrompt(ctx, prompt); err != nil {
		s.LogError(ctx, err, "Failed to save prompt", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Prompt created", slog.String("prompt_id", prompt.PromptID))
	return &prompt, nil
}

func (s *promptService) ListPrompts(ctx context.Context, principal *domain.Principal) ([]domain.Prompt, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator); err != nil {
		return nil, err
	}
	prompts, err := s.promptRepo.ListPrompts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list prompts")
		return nil, err
	}
	return prompts, nil
}

func (s *promptService) UpdatePrompt(ctx context.Context, principal *domain.Principal, promptID string, req dto.UpdatePromptRequest) (*domain.Prompt, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator); err != nil {
		return nil, err
	}

	prompts, err := s.promptRepo.ListPrompts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load prompts for update")
		return nil, err
	}
	var prompt *domain.Prompt
	for i := range prompts {
		if prompts[i].PromptID == promptID {
			prompt = &prompts[i]
			break
		}
	}
	if prompt == nil {
		return nil, apperrors.ErrNotFound
	}

	if req.Content != nil {
		prompt.Content = *req.Content
	}
	touchAudit(&prompt.AuditFields, principal)

	if err := s.promptRepo.UpdatePrompt(ctx, *prompt); err != nil {
		s.LogError(ctx, err, "Failed to update prompt", slog.String("prompt_id", promptID))
		return nil, err
	}
	return prompt, nil
}

func (s *promptService) DeletePrompt(ctx context.Context, principal *domain.Principal, promptID string) error {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator); err != nil {
		return err
	}
	if err := s.promptRepo.DeletePrompt(ctx, promptID); err != nil {
		s.LogError(ctx, err, "Failed to delete prompt", slog.String("prompt_id", promptID))
		return err
	}
	s.LogInfo(ctx, "Prompt deleted", slog.String("prompt_id", promptID))
	return nil
}

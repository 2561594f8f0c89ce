package dto

import (
	"time"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// CreatePromptRequest defines data for creating a named prompt.
type CreatePromptRequest struct {
	Name    string `json:"name" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdatePromptRequest defines data for updating a prompt's content.
type UpdatePromptRequest struct {
	Content *string `json:"content"`
}

// PromptResponse defines data returned for a prompt.
type PromptResponse struct {
	PromptID      string    `json:"promptID"`
	Name          string    `json:"name"`
	Content       string    `json:"content"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToPromptResponse converts domain.Prompt to DTO.
func ToPromptResponse(p *domain.Prompt) PromptResponse {
	return PromptResponse{
		PromptID:      p.PromptID,
		Name:          p.Name,
		Content:       p.Content,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ListPromptsResponse wraps a list of prompts.
type ListPromptsResponse struct {
	Prompts []PromptResponse `json:"prompts"`
}

// ToListPromptsResponse converts a slice of domain.Prompt to DTO.
func ToListPromptsResponse(ps []domain.Prompt) ListPromptsResponse {
	list := make([]PromptResponse, len(ps))
	for i, p := range ps {
		list[i] = ToPromptResponse(&p)
	}
	return ListPromptsResponse{Prompts: list}
}

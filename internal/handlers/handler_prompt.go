package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

// promptHandler handles HTTP requests related to summary prompts.
type promptHandler struct {
	promptService portssvc.PromptSvcFacade
}

func newPromptHandler(ps portssvc.PromptSvcFacade) *promptHandler {
	return &promptHandler{promptService: ps}
}

// registerPromptRoutes registers routes related to prompts.
func registerPromptRoutes(rg *gin.RouterGroup, promptService portssvc.PromptSvcFacade) {
	h := newPromptHandler(promptService)

	prompts := rg.Group("/prompts")
	{
		prompts.POST("", h.createPrompt)
		prompts.GET("", h.listPrompts)
		prompts.PUT("/:id", h.updatePrompt)
		prompts.DELETE("/:id", h.deletePrompt)
	}
}

// createPrompt godoc
// @Summary Create a named prompt
// @Description Adds a prompt used by summary generation (operator only)
// @Tags prompts
// @Accept json
// @Produce json
// @Param prompt body dto.CreatePromptRequest true "Prompt"
// @Success 201 {object} dto.PromptResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Name already exists"
// @Security BearerAuth
// @Router /prompts [post]
func (h *promptHandler) createPrompt(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	var req dto.CreatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	prompt, err := h.promptService.CreatePrompt(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to create prompt")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPromptResponse(prompt))
}

// listPrompts godoc
// @Summary List prompts
// @Tags prompts
// @Produce json
// @Success 200 {object} dto.ListPromptsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /prompts [get]
func (h *promptHandler) listPrompts(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	prompts, err := h.promptService.ListPrompts(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err, "Failed to list prompts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPromptsResponse(prompts))
}

// updatePrompt godoc
// @Summary Update a prompt's content
// @Tags prompts
// @Accept json
// @Produce json
// @Param id path string true "Prompt ID"
// @Param prompt body dto.UpdatePromptRequest true "New content"
// @Success 200 {object} dto.PromptResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /prompts/{id} [put]
func (h *promptHandler) updatePrompt(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	var req dto.UpdatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	prompt, err := h.promptService.UpdatePrompt(c.Request.Context(), principal, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update prompt")
		return
	}
	c.JSON(http.StatusOK, dto.ToPromptResponse(prompt))
}

// deletePrompt godoc
// @Summary Delete a prompt
// @Tags prompts
// @Param id path string true "Prompt ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /prompts/{id} [delete]
func (h *promptHandler) deletePrompt(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	if err := h.promptService.DeletePrompt(c.Request.Context(), principal, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete prompt")
		return
	}
	c.Status(http.StatusNoContent)
}

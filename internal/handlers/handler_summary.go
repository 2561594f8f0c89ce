package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

// summaryHandler handles HTTP requests related to department summaries.
type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
}

func newSummaryHandler(ss portssvc.SummarySvcFacade) *summaryHandler {
	return &summaryHandler{summaryService: ss}
}

// registerSummaryRoutes registers routes related to department summaries.
func registerSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade) {
	h := newSummaryHandler(summaryService)

	summaries := rg.Group("/summaries")
	{
		summaries.PUT("", h.upsertSummary)
		summaries.POST("/generate", h.generateSummary)
		summaries.GET("", h.listSummaries)
	}
}

// upsertSummary godoc
// @Summary Write the summary for a date and department
// @Description Inserts or overwrites so at most one summary exists per (date, department)
// @Tags summaries
// @Accept json
// @Produce json
// @Param summary body dto.UpsertSummaryRequest true "Summary"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Manager writing another department"
// @Security BearerAuth
// @Router /summaries [put]
func (h *summaryHandler) upsertSummary(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	var req dto.UpsertSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	summary, err := h.summaryService.UpsertSummary(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to save summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// generateSummary godoc
// @Summary Generate a summary from the day's reports
// @Description Produces an LLM summary of the department's reports and tries to persist it. The text is returned even when persistence fails.
// @Tags summaries
// @Accept json
// @Produce json
// @Param request body dto.GenerateSummaryRequest true "Date and department"
// @Success 200 {object} dto.GenerateSummaryResponse
// @Failure 404 {object} ErrorResponse "No reports for the date"
// @Failure 502 {object} ErrorResponse "Generation backend failed"
// @Security BearerAuth
// @Router /summaries/generate [post]
func (h *summaryHandler) generateSummary(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	var req dto.GenerateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	summary, persisted, err := h.summaryService.GenerateSummary(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to generate summary")
		return
	}
	c.JSON(http.StatusOK, dto.GenerateSummaryResponse{Summary: summary, Persisted: persisted})
}

// listSummaries godoc
// @Summary List department summaries
// @Tags summaries
// @Produce json
// @Param date query string false "Single date (YYYY-MM-DD)"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param department query string false "Department filter"
// @Success 200 {object} dto.ListSummariesResponse
// @Security BearerAuth
// @Router /summaries [get]
func (h *summaryHandler) listSummaries(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	var q dto.ListSummariesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query: " + err.Error()})
		return
	}
	summaries, err := h.summaryService.ListSummaries(c.Request.Context(), principal, q)
	if err != nil {
		respondError(c, err, "Failed to list summaries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSummariesResponse(summaries))
}

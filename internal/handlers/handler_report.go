package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

// reportHandler handles HTTP requests related to daily reports and the
// read-side views derived from them.
type reportHandler struct {
	reportService    portssvc.ReportSvcFacade
	analyticsService portssvc.AnalyticsSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade, as portssvc.AnalyticsSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs, analyticsService: as}
}

// registerReportRoutes registers routes related to daily reports.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade, analyticsService portssvc.AnalyticsSvcFacade) {
	h := newReportHandler(reportService, analyticsService)

	reports := rg.Group("/reports")
	{
		reports.POST("", h.submitReports)
		reports.GET("", h.listReports)
		reports.GET("/complete", h.completeReportList)
		reports.GET("/attendance", h.attendance)
		reports.DELETE("/:id", h.deleteReport)
		reports.POST("/legacy-delete", h.deleteLegacyReport)
	}
}

// submitReports godoc
// @Summary Submit a batch of daily reports
// @Description Reconciles one batch of work items for a single date. With isUpdate the batch replaces every stored row for its employees on that date.
// @Tags reports
// @Accept json
// @Produce json
// @Param batch body dto.SubmitReportsRequest true "Report batch"
// @Success 201 {object} dto.ListReportsResponse
// @Failure 400 {object} ErrorResponse "Empty batch, mixed dates, negative rate or leave conflict"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports [post]
func (h *reportHandler) submitReports(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	var req dto.SubmitReportsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	entries, err := h.reportService.SubmitReports(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to submit reports")
		return
	}
	c.JSON(http.StatusCreated, dto.ToListReportsResponse(entries))
}

// listReports godoc
// @Summary List daily reports
// @Description Lists report entries visible to the caller, filtered by date or range, department and employee
// @Tags reports
// @Produce json
// @Param date query string false "Single date (YYYY-MM-DD)"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param department query string false "Department filter"
// @Param employee query string false "Employee name filter"
// @Success 200 {object} dto.ListReportsResponse
// @Security BearerAuth
// @Router /reports [get]
func (h *reportHandler) listReports(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	var q dto.ListReportsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query: " + err.Error()})
		return
	}
	entries, err := h.reportService.ListReports(c.Request.Context(), principal, q)
	if err != nil {
		respondError(c, err, "Failed to list reports")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReportsResponse(entries))
}

// completeReportList godoc
// @Summary Complete report list for a date
// @Description Unions stored entries with synthetic not-submitted rows for every in-scope employee without one
// @Tags reports
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param department query string false "Department filter"
// @Success 200 {object} dto.ListReportsResponse
// @Security BearerAuth
// @Router /reports/complete [get]
func (h *reportHandler) completeReportList(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	var q dto.CompleteListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query: " + err.Error()})
		return
	}
	entries, err := h.reportService.CompleteReportList(c.Request.Context(), principal, q)
	if err != nil {
		respondError(c, err, "Failed to build complete report list")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReportsResponse(entries))
}

// attendance godoc
// @Summary Attendance stats for a period
// @Description Per-employee working days, leave days and average achievement over the period
// @Tags reports
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param department query string false "Department filter"
// @Param employee query string false "Employee name filter"
// @Success 200 {array} dto.AttendanceResponse
// @Security BearerAuth
// @Router /reports/attendance [get]
func (h *reportHandler) attendance(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	var q dto.AttendanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query: " + err.Error()})
		return
	}
	stats, err := h.analyticsService.Attendance(c.Request.Context(), principal, q)
	if err != nil {
		respondError(c, err, "Failed to compute attendance")
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceResponses(stats))
}

// deleteReport godoc
// @Summary Delete a report entry
// @Tags reports
// @Param id path string true "Report ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/{id} [delete]
func (h *reportHandler) deleteReport(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	if err := h.reportService.DeleteReport(c.Request.Context(), principal, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete report")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteLegacyReport godoc
// @Summary Delete a legacy report entry by content
// @Description Removes a historical entry that has no row ID, matched by date, employee name and work overview
// @Tags reports
// @Accept json
// @Param target body dto.DeleteLegacyReportRequest true "Entry to remove"
// @Success 204
// @Failure 404 {object} ErrorResponse "No entry matched"
// @Security BearerAuth
// @Router /reports/legacy-delete [post]
func (h *reportHandler) deleteLegacyReport(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	var req dto.DeleteLegacyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	if err := h.reportService.DeleteLegacyReport(c.Request.Context(), principal, req); err != nil {
		respondError(c, err, "Failed to delete legacy report")
		return
	}
	c.Status(http.StatusNoContent)
}

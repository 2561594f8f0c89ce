package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

// missionHandler handles HTTP requests related to missions.
type missionHandler struct {
	missionService portssvc.MissionSvcFacade
}

func newMissionHandler(ms portssvc.MissionSvcFacade) *missionHandler {
	return &missionHandler{missionService: ms}
}

// registerMissionRoutes registers routes related to missions.
func registerMissionRoutes(rg *gin.RouterGroup, missionService portssvc.MissionSvcFacade) {
	h := newMissionHandler(missionService)

	missions := rg.Group("/missions")
	{
		missions.POST("", h.createMission)
		missions.GET("", h.listMissions)
		missions.GET("/:id", h.getMission)
		missions.PUT("/:id", h.updateMission)
		missions.DELETE("/:id", h.deleteMission)
	}
}

// createMission godoc
// @Summary Create a mission with its KPIs
// @Tags missions
// @Accept json
// @Produce json
// @Param mission body dto.CreateMissionRequest true "Mission details"
// @Success 201 {object} dto.MissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /missions [post]
func (h *missionHandler) createMission(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	var req dto.CreateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	mission, err := h.missionService.CreateMission(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to create mission")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMissionResponse(mission))
}

// listMissions godoc
// @Summary List missions
// @Tags missions
// @Produce json
// @Param department query string false "Department filter"
// @Param assignee query string false "Assignee filter"
// @Param status query string false "Status filter" Enums(대기, 진행중, 완료)
// @Success 200 {object} dto.ListMissionsResponse
// @Security BearerAuth
// @Router /missions [get]
func (h *missionHandler) listMissions(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	var q dto.ListMissionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query: " + err.Error()})
		return
	}
	missions, err := h.missionService.ListMissions(c.Request.Context(), principal, q)
	if err != nil {
		respondError(c, err, "Failed to list missions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMissionsResponse(missions))
}

// getMission godoc
// @Summary Get a mission with its KPIs
// @Tags missions
// @Produce json
// @Param id path string true "Mission ID"
// @Success 200 {object} dto.MissionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /missions/{id} [get]
func (h *missionHandler) getMission(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	mission, err := h.missionService.GetMission(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get mission")
		return
	}
	c.JSON(http.StatusOK, dto.ToMissionResponse(mission))
}

// updateMission godoc
// @Summary Update a mission
// @Description Updates mission fields; a provided KPI list replaces the existing set
// @Tags missions
// @Accept json
// @Produce json
// @Param id path string true "Mission ID"
// @Param mission body dto.UpdateMissionRequest true "Fields to update"
// @Success 200 {object} dto.MissionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /missions/{id} [put]
func (h *missionHandler) updateMission(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	var req dto.UpdateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	mission, err := h.missionService.UpdateMission(c.Request.Context(), principal, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update mission")
		return
	}
	c.JSON(http.StatusOK, dto.ToMissionResponse(mission))
}

// deleteMission godoc
// @Summary Delete a mission and its KPIs
// @Tags missions
// @Param id path string true "Mission ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /missions/{id} [delete]
func (h *missionHandler) deleteMission(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	if err := h.missionService.DeleteMission(c.Request.Context(), principal, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete mission")
		return
	}
	c.Status(http.StatusNoContent)
}

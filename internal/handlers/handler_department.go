package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

// departmentHandler handles HTTP requests related to departments.
type departmentHandler struct {
	departmentService portssvc.DepartmentSvcFacade
}

func newDepartmentHandler(ds portssvc.DepartmentSvcFacade) *departmentHandler {
	return &departmentHandler{departmentService: ds}
}

// registerDepartmentRoutes registers routes related to departments.
func registerDepartmentRoutes(rg *gin.RouterGroup, departmentService portssvc.DepartmentSvcFacade) {
	h := newDepartmentHandler(departmentService)

	departments := rg.Group("/departments")
	{
		departments.POST("", h.createDepartment)
		departments.GET("", h.listDepartments)
		departments.PUT("/:id", h.updateDepartment)
		departments.DELETE("/:id", h.deleteDepartment)
	}
}

// createDepartment godoc
// @Summary Create a new department
// @Description Adds a department to a company (operator only)
// @Tags departments
// @Accept json
// @Produce json
// @Param department body dto.CreateDepartmentRequest true "Department details"
// @Success 201 {object} dto.DepartmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Name already used in the company"
// @Security BearerAuth
// @Router /departments [post]
func (h *departmentHandler) createDepartment(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	department, err := h.departmentService.CreateDepartment(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to create department")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDepartmentResponse(department))
}

// listDepartments godoc
// @Summary List departments
// @Description Lists departments visible to the caller
// @Tags departments
// @Produce json
// @Success 200 {object} dto.ListDepartmentsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /departments [get]
func (h *departmentHandler) listDepartments(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	departments, err := h.departmentService.ListDepartments(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err, "Failed to list departments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDepartmentsResponse(departments))
}

// updateDepartment godoc
// @Summary Update a department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID"
// @Param department body dto.UpdateDepartmentRequest true "Fields to update"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /departments/{id} [put]
func (h *departmentHandler) updateDepartment(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	department, err := h.departmentService.UpdateDepartment(c.Request.Context(), principal, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update department")
		return
	}
	c.JSON(http.StatusOK, dto.ToDepartmentResponse(department))
}

// deleteDepartment godoc
// @Summary Delete a department
// @Tags departments
// @Param id path string true "Department ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /departments/{id} [delete]
func (h *departmentHandler) deleteDepartment(c *gin.Context) {
	principal := mustPrincipal(c)
	if principal == nil {
		return
	}
	if err := h.departmentService.DeleteDepartment(c.Request.Context(), principal, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete department")
		return
	}
	c.Status(http.StatusNoContent)
}

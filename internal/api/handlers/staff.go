package handlers

import (
	"net/http"

	"studio-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StaffHandler handles HTTP requests for staff operations
type StaffHandler struct {
	staffService service.StaffServiceInterface
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService service.StaffServiceInterface) *StaffHandler {
	return &StaffHandler{
		staffService: staffService,
	}
}

// CreateStaff handles POST /staff
// @Summary Create a staff member
// @Description Add a team member; a password makes the member able to log in
// @Tags staff
// @Accept json
// @Produce json
// @Param request body service.CreateStaffRequest true "Staff details"
// @Success 201 {object} service.StaffResponse "Staff member created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Security BearerAuth
// @Router /staff [post]
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}

	var req service.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.staffService.CreateStaff(firmID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListStaff handles GET /staff
// @Summary List staff members
// @Tags staff
// @Produce json
// @Param active query bool false "Only active members"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.StaffListResponse "Staff members"
// @Security BearerAuth
// @Router /staff [get]
func (h *StaffHandler) ListStaff(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}

	page, pageSize := parsePagination(c)
	activeOnly := c.Query("active") == "true"

	resp, err := h.staffService.ListStaff(firmID, activeOnly, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetStaff handles GET /staff/:id
// @Summary Get a staff member
// @Tags staff
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} service.StaffResponse "Staff member"
// @Failure 404 {object} ErrorResponse "Staff member not found"
// @Security BearerAuth
// @Router /staff/{id} [get]
func (h *StaffHandler) GetStaff(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.staffService.GetStaffByID(firmID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateStaff handles PUT /staff/:id
// @Summary Update a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param request body service.UpdateStaffRequest true "Fields to update"
// @Success 200 {object} service.StaffResponse "Updated staff member"
// @Failure 404 {object} ErrorResponse "Staff member not found"
// @Security BearerAuth
// @Router /staff/{id} [put]
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.staffService.UpdateStaff(firmID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteStaff handles DELETE /staff/:id
// @Summary Delete a staff member
// @Tags staff
// @Produce json
// @Param id path string true "Staff ID"
// @Success 204 "Staff member deleted"
// @Failure 404 {object} ErrorResponse "Staff member not found"
// @Security BearerAuth
// @Router /staff/{id} [delete]
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.staffService.DeleteStaff(firmID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

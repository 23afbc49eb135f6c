package handlers

import (
	"net/http"

	"studio-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FreelancerHandler handles HTTP requests for freelancer operations
type FreelancerHandler struct {
	freelancerService service.FreelancerServiceInterface
}

// NewFreelancerHandler creates a new freelancer handler
func NewFreelancerHandler(freelancerService service.FreelancerServiceInterface) *FreelancerHandler {
	return &FreelancerHandler{
		freelancerService: freelancerService,
	}
}

// CreateFreelancer handles POST /freelancers
// @Summary Create a freelancer
// @Tags freelancers
// @Accept json
// @Produce json
// @Param request body service.CreateFreelancerRequest true "Freelancer details"
// @Success 201 {object} service.FreelancerResponse "Freelancer created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /freelancers [post]
func (h *FreelancerHandler) CreateFreelancer(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}

	var req service.CreateFreelancerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.freelancerService.CreateFreelancer(firmID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListFreelancers handles GET /freelancers
// @Summary List freelancers
// @Tags freelancers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.FreelancerListResponse "Freelancers"
// @Security BearerAuth
// @Router /freelancers [get]
func (h *FreelancerHandler) ListFreelancers(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}

	page, pageSize := parsePagination(c)
	resp, err := h.freelancerService.ListFreelancers(firmID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetFreelancer handles GET /freelancers/:id
// @Summary Get a freelancer
// @Tags freelancers
// @Produce json
// @Param id path string true "Freelancer ID"
// @Success 200 {object} service.FreelancerResponse "Freelancer"
// @Failure 404 {object} ErrorResponse "Freelancer not found"
// @Security BearerAuth
// @Router /freelancers/{id} [get]
func (h *FreelancerHandler) GetFreelancer(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.freelancerService.GetFreelancerByID(firmID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateFreelancer handles PUT /freelancers/:id
// @Summary Update a freelancer
// @Tags freelancers
// @Accept json
// @Produce json
// @Param id path string true "Freelancer ID"
// @Param request body service.UpdateFreelancerRequest true "Fields to update"
// @Success 200 {object} service.FreelancerResponse "Updated freelancer"
// @Failure 404 {object} ErrorResponse "Freelancer not found"
// @Security BearerAuth
// @Router /freelancers/{id} [put]
func (h *FreelancerHandler) UpdateFreelancer(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateFreelancerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.freelancerService.UpdateFreelancer(firmID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteFreelancer handles DELETE /freelancers/:id
// @Summary Delete a freelancer
// @Tags freelancers
// @Produce json
// @Param id path string true "Freelancer ID"
// @Success 204 "Freelancer deleted"
// @Failure 404 {object} ErrorResponse "Freelancer not found"
// @Security BearerAuth
// @Router /freelancers/{id} [delete]
func (h *FreelancerHandler) DeleteFreelancer(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.freelancerService.DeleteFreelancer(firmID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

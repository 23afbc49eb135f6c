package handlers

import (
	"net/http"

	"studio-manager-backend/internal/database/models"
	"studio-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// QuotationHandler handles HTTP requests for quotation operations
type QuotationHandler struct {
	quotationService service.QuotationServiceInterface
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(quotationService service.QuotationServiceInterface) *QuotationHandler {
	return &QuotationHandler{
		quotationService: quotationService,
	}
}

// CreateQuotation handles POST /quotations
// @Summary Create a quotation
// @Description Create a draft quotation for a client, optionally with per-day crew details
// @Tags quotations
// @Accept json
// @Produce json
// @Param request body service.CreateQuotationRequest true "Quotation details"
// @Success 201 {object} service.QuotationResponse "Quotation created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /quotations [post]
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}

	var req service.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.quotationService.CreateQuotation(firmID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListQuotations handles GET /quotations
// @Summary List quotations
// @Tags quotations
// @Produce json
// @Param status query string false "Filter by status (draft, sent, accepted, rejected)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.QuotationListResponse "Quotations"
// @Security BearerAuth
// @Router /quotations [get]
func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}

	page, pageSize := parsePagination(c)
	status := models.QuotationStatus(c.Query("status"))

	resp, err := h.quotationService.ListQuotations(firmID, status, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetQuotation handles GET /quotations/:id
// @Summary Get a quotation
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} service.QuotationResponse "Quotation"
// @Failure 404 {object} ErrorResponse "Quotation not found"
// @Security BearerAuth
// @Router /quotations/{id} [get]
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.quotationService.GetQuotationByID(firmID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateQuotation handles PUT /quotations/:id
// @Summary Update a quotation
// @Description Edit a draft or sent quotation; accepted and rejected ones are frozen
// @Tags quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param request body service.UpdateQuotationRequest true "Fields to update"
// @Success 200 {object} service.QuotationResponse "Updated quotation"
// @Failure 400 {object} ErrorResponse "Invalid request or frozen quotation"
// @Failure 404 {object} ErrorResponse "Quotation not found"
// @Security BearerAuth
// @Router /quotations/{id} [put]
func (h *QuotationHandler) UpdateQuotation(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.quotationService.UpdateQuotation(firmID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateQuotationStatus handles PATCH /quotations/:id/status
// @Summary Update quotation status
// @Description Move a quotation through its lifecycle (draft, sent, accepted, rejected)
// @Tags quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param request body service.UpdateQuotationStatusRequest true "New status"
// @Success 200 {object} service.QuotationResponse "Updated quotation"
// @Failure 400 {object} ErrorResponse "Invalid transition"
// @Failure 404 {object} ErrorResponse "Quotation not found"
// @Security BearerAuth
// @Router /quotations/{id}/status [patch]
func (h *QuotationHandler) UpdateQuotationStatus(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateQuotationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.quotationService.UpdateStatus(firmID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteQuotation handles DELETE /quotations/:id
// @Summary Delete a quotation
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 204 "Quotation deleted"
// @Failure 400 {object} ErrorResponse "Accepted quotation cannot be deleted"
// @Failure 404 {object} ErrorResponse "Quotation not found"
// @Security BearerAuth
// @Router /quotations/{id} [delete]
func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.quotationService.DeleteQuotation(firmID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

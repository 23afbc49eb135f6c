package handlers

import (
	"net/http"

	"studio-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FirmHandler handles HTTP requests for firm operations
type FirmHandler struct {
	firmService service.FirmServiceInterface
}

// NewFirmHandler creates a new firm handler
func NewFirmHandler(firmService service.FirmServiceInterface) *FirmHandler {
	return &FirmHandler{
		firmService: firmService,
	}
}

// CreateFirm handles POST /firms
// @Summary Create a firm
// @Description Register a new studio firm tenant
// @Tags firms
// @Accept json
// @Produce json
// @Param request body service.CreateFirmRequest true "Firm details"
// @Success 201 {object} service.FirmResponse "Firm created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Firm name already taken"
// @Router /firms [post]
func (h *FirmHandler) CreateFirm(c *gin.Context) {
	var req service.CreateFirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.firmService.CreateFirm(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetMyFirm handles GET /firms/me
// @Summary Get the authenticated firm
// @Description Get the firm the current staff member belongs to
// @Tags firms
// @Produce json
// @Success 200 {object} service.FirmResponse "Firm details"
// @Failure 404 {object} ErrorResponse "Firm not found"
// @Security BearerAuth
// @Router /firms/me [get]
func (h *FirmHandler) GetMyFirm(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}

	resp, err := h.firmService.GetFirmByID(firmID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateMyFirm handles PUT /firms/me
// @Summary Update the authenticated firm
// @Description Update profile fields of the current firm
// @Tags firms
// @Accept json
// @Produce json
// @Param request body service.UpdateFirmRequest true "Fields to update"
// @Success 200 {object} service.FirmResponse "Updated firm"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /firms/me [put]
func (h *FirmHandler) UpdateMyFirm(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}

	var req service.UpdateFirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.firmService.UpdateFirm(firmID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

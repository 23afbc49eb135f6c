package handlers

import (
	"net/http"
	"time"

	"studio-manager-backend/internal/database/models"
	"studio-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountingHandler handles HTTP requests for the firm ledger
type AccountingHandler struct {
	accountingService service.AccountingServiceInterface
}

// NewAccountingHandler creates a new accounting handler
func NewAccountingHandler(accountingService service.AccountingServiceInterface) *AccountingHandler {
	return &AccountingHandler{
		accountingService: accountingService,
	}
}

// CreateEntry handles POST /accounting/entries
// @Summary Record a ledger entry
// @Tags accounting
// @Accept json
// @Produce json
// @Param request body service.CreateEntryRequest true "Entry details"
// @Success 201 {object} service.EntryResponse "Entry recorded"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /accounting/entries [post]
func (h *AccountingHandler) CreateEntry(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}

	var req service.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.accountingService.CreateEntry(firmID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListEntries handles GET /accounting/entries
// @Summary List ledger entries
// @Tags accounting
// @Produce json
// @Param kind query string false "Filter by kind (income or expense)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.EntryListResponse "Ledger entries"
// @Security BearerAuth
// @Router /accounting/entries [get]
func (h *AccountingHandler) ListEntries(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}

	page, pageSize := parsePagination(c)
	kind := models.EntryKind(c.Query("kind"))

	resp, err := h.accountingService.ListEntries(firmID, kind, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Summary handles GET /accounting/summary
// @Summary Summarize the ledger for a period
// @Description Total income, expenses and net between two dates inclusive
// @Tags accounting
// @Produce json
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} service.LedgerSummaryResponse "Period summary"
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Security BearerAuth
// @Router /accounting/summary [get]
func (h *AccountingHandler) Summary(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
		return
	}

	resp, err := h.accountingService.Summarize(firmID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteEntry handles DELETE /accounting/entries/:id
// @Summary Delete a ledger entry
// @Tags accounting
// @Produce json
// @Param id path string true "Entry ID"
// @Success 204 "Entry deleted"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /accounting/entries/{id} [delete]
func (h *AccountingHandler) DeleteEntry(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.accountingService.DeleteEntry(firmID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"
	"strconv"

	"studio-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EventHandler handles HTTP requests for event operations
type EventHandler struct {
	eventService service.EventServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService service.EventServiceInterface) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// CreateEvent handles POST /events
// @Summary Create an event
// @Description Create an event standalone or from an accepted quotation. Creating from a quotation snapshots its crew details onto the event.
// @Tags events
// @Accept json
// @Produce json
// @Param request body service.CreateEventRequest true "Event details"
// @Success 201 {object} service.EventResponse "Event created"
// @Failure 400 {object} ErrorResponse "Invalid request or quotation not accepted"
// @Security BearerAuth
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}

	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.eventService.CreateEvent(firmID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListEvents handles GET /events
// @Summary List events
// @Tags events
// @Produce json
// @Param upcoming_days query int false "Only events starting within this many days"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.EventListResponse "Events"
// @Security BearerAuth
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}

	page, pageSize := parsePagination(c)
	upcomingDays, _ := strconv.Atoi(c.DefaultQuery("upcoming_days", "0"))

	resp, err := h.eventService.ListEvents(firmID, upcomingDays, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetEvent handles GET /events/:id
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} service.EventResponse "Event"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.eventService.GetEventByID(firmID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateEvent handles PUT /events/:id
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body service.UpdateEventRequest true "Fields to update"
// @Success 200 {object} service.EventResponse "Updated event"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.eventService.UpdateEvent(firmID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteEvent handles DELETE /events/:id
// @Summary Delete an event
// @Description Delete an event and all of its crew assignments
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 204 "Event deleted"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(firmID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

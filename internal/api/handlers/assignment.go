package handlers

import (
	"net/http"
	"strconv"
	"time"

	"studio-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for the crew assignment editor
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
	eventService      service.EventServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService service.AssignmentServiceInterface, eventService service.EventServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		eventService:      eventService,
	}
}

// ownedEvent verifies the event belongs to the authenticated firm
func (h *AssignmentHandler) ownedEvent(c *gin.Context) bool {
	firmID, ok := firmFromContext(c)
	if !ok {
		return false
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return false
	}
	if _, err := h.eventService.GetEventByID(firmID, id); err != nil {
		respondError(c, err)
		return false
	}
	return true
}

// GetDaySlots handles GET /events/:id/assignments
// @Summary Get the event's editable crew slots
// @Description Per-day role slots reconciled against the event's quotation snapshot and saved assignments. Quotation-governed roles are padded or truncated to the required count; other slot lists reflect what is saved.
// @Tags assignments
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} service.DaySlotsResponse "Editable slot state"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id}/assignments [get]
func (h *AssignmentHandler) GetDaySlots(c *gin.Context) {
	if !h.ownedEvent(c) {
		return
	}
	id, _ := parseIDParam(c, "id")

	resp, err := h.assignmentService.GetDaySlots(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SaveAssignments handles PUT /events/:id/assignments
// @Summary Save the event's crew assignments
// @Description Replace the event's assignment set with the edited slot state and return what changed. Empty slots are ignored; a person holding the same role twice on one day is rejected before anything is written.
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body service.SaveAssignmentsRequest true "Edited day slots"
// @Success 200 {object} service.AssignmentDiffResponse "Added and removed assignments"
// @Failure 400 {object} ErrorResponse "Invalid slot state"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id}/assignments [put]
func (h *AssignmentHandler) SaveAssignments(c *gin.Context) {
	if !h.ownedEvent(c) {
		return
	}
	id, _ := parseIDParam(c, "id")

	var req service.SaveAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.assignmentService.SaveForEvent(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CheckConflicts handles GET /events/:id/assignments/conflicts
// @Summary Check a person's conflicting bookings
// @Description List the person's assignments on other events whose dates overlap this event's date window. Conflicts are advisory; saving is still allowed.
// @Tags assignments
// @Produce json
// @Param id path string true "Event ID"
// @Param person_id query string true "Person ID (staff or freelancer)"
// @Param date query string true "Event start date (YYYY-MM-DD)"
// @Param days query int false "Window length in days" default(1)
// @Success 200 {object} service.ConflictCheckResponse "Conflicting bookings, possibly empty"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id}/assignments/conflicts [get]
func (h *AssignmentHandler) CheckConflicts(c *gin.Context) {
	if !h.ownedEvent(c) {
		return
	}
	id, _ := parseIDParam(c, "id")

	personID := c.Query("person_id")
	days, _ := strconv.Atoi(c.DefaultQuery("days", "1"))

	var date time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	resp, err := h.assignmentService.CheckConflicts(id, personID, date, days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

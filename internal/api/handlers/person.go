package handlers

import (
	"net/http"

	"studio-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PersonHandler exposes the merged staff+freelancer directory used by the
// assignment editor's people picker
type PersonHandler struct {
	personService service.PersonServiceInterface
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(personService service.PersonServiceInterface) *PersonHandler {
	return &PersonHandler{
		personService: personService,
	}
}

// ListPeople handles GET /people
// @Summary List assignable people
// @Description Merged list of the firm's staff and freelancers, each tagged with its kind
// @Tags people
// @Produce json
// @Success 200 {array} service.Person "Assignable people"
// @Security BearerAuth
// @Router /people [get]
func (h *PersonHandler) ListPeople(c *gin.Context) {
	firmID, ok := firmFromContext(c)
	if !ok {
		return
	}

	people, err := h.personService.ListPeople(firmID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, people)
}

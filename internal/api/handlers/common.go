package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"studio-manager-backend/internal/auth"
	apperrors "studio-manager-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// firmFromContext extracts the authenticated firm id, aborting with 401 if
// the auth middleware did not run
func firmFromContext(c *gin.Context) (uuid.UUID, bool) {
	firmID, ok := auth.FirmID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrFirmIDMissing.Error()})
		return uuid.Nil, false
	}
	return firmID, true
}

// parseIDParam parses a uuid path parameter, aborting with 400 on failure
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads page/page_size query parameters with defaults
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err),
		isBusinessError(err),
		strings.Contains(err.Error(), "validation failed"):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func isBusinessError(err error) bool {
	for _, target := range []error{
		apperrors.ErrInvalidStatus,
		apperrors.ErrInvalidRole,
		apperrors.ErrInvalidPersonKind,
		apperrors.ErrDuplicateAssignment,
		apperrors.ErrEventDateRequired,
		apperrors.ErrTotalDaysOutOfRange,
		apperrors.ErrQuotationNotAccepted,
		apperrors.ErrQuotationFirmMismatch,
		apperrors.ErrInvalidPaginationParams,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

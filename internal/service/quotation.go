package service

import (
	"errors"
	"fmt"
	"time"

	"studio-manager-backend/internal/database/models"
	apperrors "studio-manager-backend/internal/errors"
	"studio-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuotationService provides quotation-related business logic
type QuotationService struct {
	repo       repository.QuotationRepositoryInterface
	clientRepo repository.ClientRepositoryInterface
	validator  *validator.Validate
}

// Ensure QuotationService implements QuotationServiceInterface
var _ QuotationServiceInterface = (*QuotationService)(nil)

// NewQuotationService creates a new QuotationService
func NewQuotationService(repo repository.QuotationRepositoryInterface, clientRepo repository.ClientRepositoryInterface, validator *validator.Validate) *QuotationService {
	return &QuotationService{
		repo:       repo,
		clientRepo: clientRepo,
		validator:  validator,
	}
}

// CreateQuotationRequest represents the request to create a quotation
type CreateQuotationRequest struct {
	ClientID  uuid.UUID                `json:"client_id" validate:"required"`
	Title     string                   `json:"title" validate:"required,min=1,max=150"`
	EventType models.EventType         `json:"event_type" validate:"required"`
	EventDate string                   `json:"event_date" validate:"required"`
	TotalDays int                      `json:"total_days" validate:"required,min=1,max=30"`
	Amount    float64                  `json:"amount" validate:"min=0"`
	Details   *models.QuotationDetails `json:"details"`
	Note      string                   `json:"note"`
}

// UpdateQuotationRequest represents the request to update a quotation
type UpdateQuotationRequest struct {
	Title     *string                  `json:"title" validate:"omitempty,min=1,max=150"`
	EventType *models.EventType        `json:"event_type"`
	EventDate *string                  `json:"event_date"`
	TotalDays *int                     `json:"total_days" validate:"omitempty,min=1,max=30"`
	Amount    *float64                 `json:"amount" validate:"omitempty,min=0"`
	Details   *models.QuotationDetails `json:"details"`
	Note      *string                  `json:"note"`
}

// UpdateQuotationStatusRequest moves a quotation through its lifecycle
type UpdateQuotationStatusRequest struct {
	Status models.QuotationStatus `json:"status" validate:"required"`
}

// QuotationResponse represents a quotation in API responses
type QuotationResponse struct {
	ID         uuid.UUID                `json:"id"`
	FirmID     uuid.UUID                `json:"firm_id"`
	ClientID   uuid.UUID                `json:"client_id"`
	ClientName string                   `json:"client_name,omitempty"`
	Title      string                   `json:"title"`
	EventType  models.EventType         `json:"event_type"`
	EventDate  string                   `json:"event_date"`
	TotalDays  int                      `json:"total_days"`
	Amount     float64                  `json:"amount"`
	Status     models.QuotationStatus   `json:"status"`
	Details    *models.QuotationDetails `json:"details,omitempty"`
	Note       string                   `json:"note,omitempty"`
}

// QuotationListResponse represents a paginated list of quotations
type QuotationListResponse struct {
	Quotations []QuotationResponse `json:"quotations"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// CreateQuotation creates a new draft quotation
func (s *QuotationService) CreateQuotation(firmID uuid.UUID, req *CreateQuotationRequest) (*QuotationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.EventType.IsValid() {
		return nil, apperrors.NewValidationError("event_type", "unknown event type")
	}

	eventDate, err := parseDate(req.EventDate)
	if err != nil {
		return nil, apperrors.NewValidationError("event_date", "must be YYYY-MM-DD")
	}

	client, err := s.clientRepo.GetByID(req.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if client.FirmID != firmID {
		return nil, apperrors.ErrFirmMismatch
	}

	quotation := &models.Quotation{
		FirmID:    firmID,
		ClientID:  req.ClientID,
		Title:     req.Title,
		EventType: req.EventType,
		EventDate: eventDate,
		TotalDays: req.TotalDays,
		Amount:    req.Amount,
		Status:    models.QuotationStatusDraft,
		Details:   req.Details,
		Note:      req.Note,
	}
	if err := s.repo.Create(quotation); err != nil {
		return nil, fmt.Errorf("failed to create quotation: %w", err)
	}

	response := s.toResponse(quotation)
	return &response, nil
}

// GetQuotationByID retrieves a quotation with its client, enforcing firm ownership
func (s *QuotationService) GetQuotationByID(firmID, id uuid.UUID) (*QuotationResponse, error) {
	quotation, err := s.repo.GetWithClient(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuotationNotFound
		}
		return nil, fmt.Errorf("failed to get quotation: %w", err)
	}
	if quotation.FirmID != firmID {
		return nil, apperrors.ErrFirmMismatch
	}

	response := s.toResponse(quotation)
	return &response, nil
}

// ListQuotations retrieves the firm's quotations with pagination, optionally
// filtered by status
func (s *QuotationService) ListQuotations(firmID uuid.UUID, status models.QuotationStatus, page, pageSize int) (*QuotationListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	var (
		quotations []models.Quotation
		total      int64
		err        error
	)
	if status != "" {
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		quotations, total, err = s.repo.GetByStatus(firmID, status, pageSize, offset)
	} else {
		quotations, total, err = s.repo.GetByFirmID(firmID, pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}

	responses := make([]QuotationResponse, len(quotations))
	for i, q := range quotations {
		responses[i] = s.toResponse(&q)
	}

	return &QuotationListResponse{
		Quotations: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// UpdateQuotation applies a partial update to a quotation. Accepted or
// rejected quotations are frozen; only draft and sent ones can be edited.
func (s *QuotationService) UpdateQuotation(firmID, id uuid.UUID, req *UpdateQuotationRequest) (*QuotationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	quotation, err := s.getOwned(firmID, id)
	if err != nil {
		return nil, err
	}
	if quotation.Status == models.QuotationStatusAccepted || quotation.Status == models.QuotationStatusRejected {
		return nil, fmt.Errorf("%w: %s quotation cannot be edited", apperrors.ErrInvalidStatus, quotation.Status)
	}

	if req.Title != nil {
		quotation.Title = *req.Title
	}
	if req.EventType != nil {
		if !req.EventType.IsValid() {
			return nil, apperrors.NewValidationError("event_type", "unknown event type")
		}
		quotation.EventType = *req.EventType
	}
	if req.EventDate != nil {
		eventDate, err := parseDate(*req.EventDate)
		if err != nil {
			return nil, apperrors.NewValidationError("event_date", "must be YYYY-MM-DD")
		}
		quotation.EventDate = eventDate
	}
	if req.TotalDays != nil {
		quotation.TotalDays = *req.TotalDays
	}
	if req.Amount != nil {
		quotation.Amount = *req.Amount
	}
	if req.Details != nil {
		quotation.Details = req.Details
	}
	if req.Note != nil {
		quotation.Note = *req.Note
	}

	if err := s.repo.Update(quotation); err != nil {
		return nil, fmt.Errorf("failed to update quotation: %w", err)
	}

	response := s.toResponse(quotation)
	return &response, nil
}

// UpdateStatus moves a quotation through draft -> sent -> accepted/rejected
func (s *QuotationService) UpdateStatus(firmID, id uuid.UUID, req *UpdateQuotationStatusRequest) (*QuotationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	quotation, err := s.getOwned(firmID, id)
	if err != nil {
		return nil, err
	}
	if !validStatusTransition(quotation.Status, req.Status) {
		return nil, fmt.Errorf("%w: cannot move from %s to %s", apperrors.ErrInvalidStatus, quotation.Status, req.Status)
	}

	quotation.Status = req.Status
	if err := s.repo.Update(quotation); err != nil {
		return nil, fmt.Errorf("failed to update quotation status: %w", err)
	}

	response := s.toResponse(quotation)
	return &response, nil
}

// DeleteQuotation removes a quotation. Accepted quotations stay; the events
// created from them reference them as source.
func (s *QuotationService) DeleteQuotation(firmID, id uuid.UUID) error {
	quotation, err := s.getOwned(firmID, id)
	if err != nil {
		return err
	}
	if quotation.Status == models.QuotationStatusAccepted {
		return fmt.Errorf("%w: accepted quotation cannot be deleted", apperrors.ErrInvalidStatus)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete quotation: %w", err)
	}
	return nil
}

func (s *QuotationService) getOwned(firmID, id uuid.UUID) (*models.Quotation, error) {
	quotation, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuotationNotFound
		}
		return nil, fmt.Errorf("failed to get quotation: %w", err)
	}
	if quotation.FirmID != firmID {
		return nil, apperrors.ErrFirmMismatch
	}
	return quotation, nil
}

// toResponse converts a Quotation model to API response
func (s *QuotationService) toResponse(quotation *models.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:         quotation.ID,
		FirmID:     quotation.FirmID,
		ClientID:   quotation.ClientID,
		ClientName: quotation.Client.Name,
		Title:      quotation.Title,
		EventType:  quotation.EventType,
		EventDate:  quotation.EventDate.Format("2006-01-02"),
		TotalDays:  quotation.TotalDays,
		Amount:     quotation.Amount,
		Status:     quotation.Status,
		Details:    quotation.Details,
		Note:       quotation.Note,
	}
}

// validStatusTransition encodes the quotation lifecycle. Re-sending a sent
// quotation is allowed so edits can be re-communicated.
func validStatusTransition(from, to models.QuotationStatus) bool {
	switch from {
	case models.QuotationStatusDraft:
		return to == models.QuotationStatusSent
	case models.QuotationStatusSent:
		return to == models.QuotationStatusSent ||
			to == models.QuotationStatusAccepted ||
			to == models.QuotationStatusRejected
	case models.QuotationStatusRejected:
		return to == models.QuotationStatusSent
	}
	return false
}

// parseDate parses a date-only field in API requests
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

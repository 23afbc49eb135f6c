package service

import (
	"errors"
	"fmt"

	"studio-manager-backend/internal/database/models"
	apperrors "studio-manager-backend/internal/errors"
	"studio-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventService provides event-related business logic
type EventService struct {
	repo           repository.EventRepositoryInterface
	quotationRepo  repository.QuotationRepositoryInterface
	clientRepo     repository.ClientRepositoryInterface
	assignmentRepo repository.AssignmentRepositoryInterface
	validator      *validator.Validate
}

// Ensure EventService implements EventServiceInterface
var _ EventServiceInterface = (*EventService)(nil)

// NewEventService creates a new EventService
func NewEventService(
	repo repository.EventRepositoryInterface,
	quotationRepo repository.QuotationRepositoryInterface,
	clientRepo repository.ClientRepositoryInterface,
	assignmentRepo repository.AssignmentRepositoryInterface,
	validator *validator.Validate,
) *EventService {
	return &EventService{
		repo:           repo,
		quotationRepo:  quotationRepo,
		clientRepo:     clientRepo,
		assignmentRepo: assignmentRepo,
		validator:      validator,
	}
}

// CreateEventRequest represents the request to create an event. When
// QuotationID is set the quotation must be accepted and its crew details are
// snapshotted onto the event; omitted fields default from the quotation.
type CreateEventRequest struct {
	QuotationID *uuid.UUID       `json:"quotation_id"`
	ClientID    *uuid.UUID       `json:"client_id"`
	Title       string           `json:"title" validate:"omitempty,min=1,max=150"`
	EventType   models.EventType `json:"event_type"`
	EventDate   string           `json:"event_date"`
	TotalDays   int              `json:"total_days" validate:"omitempty,min=1,max=30"`
	Venue       string           `json:"venue" validate:"max=200"`
}

// UpdateEventRequest represents the request to update an event
type UpdateEventRequest struct {
	Title     *string           `json:"title" validate:"omitempty,min=1,max=150"`
	EventType *models.EventType `json:"event_type"`
	EventDate *string           `json:"event_date"`
	TotalDays *int              `json:"total_days" validate:"omitempty,min=1,max=30"`
	Venue     *string           `json:"venue" validate:"omitempty,max=200"`
}

// EventResponse represents an event in API responses
type EventResponse struct {
	ID                uuid.UUID        `json:"id"`
	FirmID            uuid.UUID        `json:"firm_id"`
	ClientID          uuid.UUID        `json:"client_id"`
	ClientName        string           `json:"client_name,omitempty"`
	Title             string           `json:"title"`
	EventType         models.EventType `json:"event_type"`
	EventDate         string           `json:"event_date"`
	TotalDays         int              `json:"total_days"`
	Venue             string           `json:"venue,omitempty"`
	QuotationSourceID *uuid.UUID       `json:"quotation_source_id,omitempty"`
}

// EventListResponse represents a paginated list of events
type EventListResponse struct {
	Events   []EventResponse `json:"events"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// CreateEvent creates a new event, either standalone or from an accepted quotation
func (s *EventService) CreateEvent(firmID uuid.UUID, req *CreateEventRequest) (*EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	event := &models.Event{
		FirmID:    firmID,
		Title:     req.Title,
		EventType: req.EventType,
		TotalDays: req.TotalDays,
		Venue:     req.Venue,
	}
	if req.EventDate != "" {
		eventDate, err := parseDate(req.EventDate)
		if err != nil {
			return nil, apperrors.NewValidationError("event_date", "must be YYYY-MM-DD")
		}
		event.EventDate = eventDate
	}
	if req.ClientID != nil {
		event.ClientID = *req.ClientID
	}

	if req.QuotationID != nil {
		quotation, err := s.quotationRepo.GetByID(*req.QuotationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrQuotationNotFound
			}
			return nil, fmt.Errorf("failed to get quotation: %w", err)
		}
		if quotation.FirmID != firmID {
			return nil, apperrors.ErrQuotationFirmMismatch
		}
		if quotation.Status != models.QuotationStatusAccepted {
			return nil, apperrors.ErrQuotationNotAccepted
		}

		event.QuotationSourceID = &quotation.ID
		event.QuotationDetails = quotation.Details
		if event.ClientID == uuid.Nil {
			event.ClientID = quotation.ClientID
		}
		if event.Title == "" {
			event.Title = quotation.Title
		}
		if event.EventType == "" {
			event.EventType = quotation.EventType
		}
		if event.EventDate.IsZero() {
			event.EventDate = quotation.EventDate
		}
		if event.TotalDays == 0 {
			event.TotalDays = quotation.TotalDays
		}
	}

	if event.Title == "" {
		return nil, apperrors.NewValidationError("title", "title is required")
	}
	if !event.EventType.IsValid() {
		return nil, apperrors.NewValidationError("event_type", "unknown event type")
	}
	if event.EventDate.IsZero() {
		return nil, apperrors.ErrEventDateRequired
	}
	if event.TotalDays < 1 {
		return nil, apperrors.ErrTotalDaysOutOfRange
	}

	client, err := s.clientRepo.GetByID(event.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if client.FirmID != firmID {
		return nil, apperrors.ErrFirmMismatch
	}

	if err := s.repo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	response := s.toResponse(event)
	return &response, nil
}

// GetEventByID retrieves an event with its client, enforcing firm ownership
func (s *EventService) GetEventByID(firmID, id uuid.UUID) (*EventResponse, error) {
	event, err := s.repo.GetWithClient(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event.FirmID != firmID {
		return nil, apperrors.ErrFirmMismatch
	}

	response := s.toResponse(event)
	return &response, nil
}

// ListEvents retrieves the firm's events with pagination. upcomingDays > 0
// narrows the list to events starting within that many days from today.
func (s *EventService) ListEvents(firmID uuid.UUID, upcomingDays, page, pageSize int) (*EventListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	var (
		events []models.Event
		total  int64
		err    error
	)
	if upcomingDays > 0 {
		events, total, err = s.repo.GetUpcoming(firmID, upcomingDays, pageSize, offset)
	} else {
		events, total, err = s.repo.GetByFirmID(firmID, pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	responses := make([]EventResponse, len(events))
	for i, e := range events {
		responses[i] = s.toResponse(&e)
	}

	return &EventListResponse{
		Events:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateEvent applies a partial update to an event. The quotation snapshot
// is never touched here; shrinking TotalDays leaves out-of-range
// assignments to be cleaned up on the next slot save.
func (s *EventService) UpdateEvent(firmID, id uuid.UUID, req *UpdateEventRequest) (*EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	event, err := s.getOwned(firmID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.EventType != nil {
		if !req.EventType.IsValid() {
			return nil, apperrors.NewValidationError("event_type", "unknown event type")
		}
		event.EventType = *req.EventType
	}
	if req.EventDate != nil {
		eventDate, err := parseDate(*req.EventDate)
		if err != nil {
			return nil, apperrors.NewValidationError("event_date", "must be YYYY-MM-DD")
		}
		event.EventDate = eventDate
	}
	if req.TotalDays != nil {
		event.TotalDays = *req.TotalDays
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}

	if err := s.repo.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	response := s.toResponse(event)
	return &response, nil
}

// DeleteEvent removes an event and its assignments
func (s *EventService) DeleteEvent(firmID, id uuid.UUID) error {
	if _, err := s.getOwned(firmID, id); err != nil {
		return err
	}
	if err := s.assignmentRepo.DeleteByEventID(id); err != nil {
		return fmt.Errorf("failed to delete event assignments: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func (s *EventService) getOwned(firmID, id uuid.UUID) (*models.Event, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event.FirmID != firmID {
		return nil, apperrors.ErrFirmMismatch
	}
	return event, nil
}

// toResponse converts an Event model to API response
func (s *EventService) toResponse(event *models.Event) EventResponse {
	return EventResponse{
		ID:                event.ID,
		FirmID:            event.FirmID,
		ClientID:          event.ClientID,
		ClientName:        event.Client.Name,
		Title:             event.Title,
		EventType:         event.EventType,
		EventDate:         event.EventDate.Format("2006-01-02"),
		TotalDays:         event.TotalDays,
		Venue:             event.Venue,
		QuotationSourceID: event.QuotationSourceID,
	}
}

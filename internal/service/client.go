package service

import (
	"errors"
	"fmt"
	"strings"

	"studio-manager-backend/internal/database/models"
	apperrors "studio-manager-backend/internal/errors"
	"studio-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientService provides client-related business logic
type ClientService struct {
	repo      repository.ClientRepositoryInterface
	validator *validator.Validate
}

// Ensure ClientService implements ClientServiceInterface
var _ ClientServiceInterface = (*ClientService)(nil)

// NewClientService creates a new ClientService
func NewClientService(repo repository.ClientRepositoryInterface, validator *validator.Validate) *ClientService {
	return &ClientService{
		repo:      repo,
		validator: validator,
	}
}

// CreateClientRequest represents the request to create a client
type CreateClientRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Phone   string `json:"phone" validate:"required,max=20"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"max=300"`
}

// UpdateClientRequest represents the request to update a client
type UpdateClientRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address" validate:"omitempty,max=300"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID      uuid.UUID `json:"id"`
	FirmID  uuid.UUID `json:"firm_id"`
	Name    string    `json:"name"`
	Phone   string    `json:"phone"`
	Email   string    `json:"email"`
	Address string    `json:"address"`
}

// ClientListResponse represents a paginated list of clients
type ClientListResponse struct {
	Clients  []ClientResponse `json:"clients"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// CreateClient creates a new client under the firm
func (s *ClientService) CreateClient(firmID uuid.UUID, req *CreateClientRequest) (*ClientResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	client := &models.Client{
		FirmID:  firmID,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := s.repo.Create(client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	response := s.toResponse(client)
	return &response, nil
}

// GetClientByID retrieves a client, enforcing firm ownership
func (s *ClientService) GetClientByID(firmID, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.getOwned(firmID, id)
	if err != nil {
		return nil, err
	}

	response := s.toResponse(client)
	return &response, nil
}

// ListClients retrieves the firm's clients with pagination. A non-empty
// query searches by name or phone instead.
func (s *ClientService) ListClients(firmID uuid.UUID, query string, page, pageSize int) (*ClientListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	var (
		clients []models.Client
		total   int64
		err     error
	)
	if q := strings.TrimSpace(query); q != "" {
		clients, total, err = s.repo.Search(firmID, q, pageSize, offset)
	} else {
		clients, total, err = s.repo.GetByFirmID(firmID, pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	responses := make([]ClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = s.toResponse(&c)
	}

	return &ClientListResponse{
		Clients:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateClient applies a partial update to a client
func (s *ClientService) UpdateClient(firmID, id uuid.UUID, req *UpdateClientRequest) (*ClientResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	client, err := s.getOwned(firmID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Address != nil {
		client.Address = *req.Address
	}

	if err := s.repo.Update(client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	response := s.toResponse(client)
	return &response, nil
}

// DeleteClient removes a client
func (s *ClientService) DeleteClient(firmID, id uuid.UUID) error {
	if _, err := s.getOwned(firmID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

func (s *ClientService) getOwned(firmID, id uuid.UUID) (*models.Client, error) {
	client, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if client.FirmID != firmID {
		return nil, apperrors.ErrFirmMismatch
	}
	return client, nil
}

// toResponse converts a Client model to API response
func (s *ClientService) toResponse(client *models.Client) ClientResponse {
	return ClientResponse{
		ID:      client.ID,
		FirmID:  client.FirmID,
		Name:    client.Name,
		Phone:   client.Phone,
		Email:   client.Email,
		Address: client.Address,
	}
}

// normalizePagination clamps page/pageSize to sane bounds
func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

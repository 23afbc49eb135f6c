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

// FirmService provides firm-related business logic
type FirmService struct {
	repo      repository.FirmRepositoryInterface
	validator *validator.Validate
}

// Ensure FirmService implements FirmServiceInterface
var _ FirmServiceInterface = (*FirmService)(nil)

// NewFirmService creates a new FirmService
func NewFirmService(repo repository.FirmRepositoryInterface, validator *validator.Validate) *FirmService {
	return &FirmService{
		repo:      repo,
		validator: validator,
	}
}

// CreateFirmRequest represents the request to create a firm
type CreateFirmRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Tagline string `json:"tagline" validate:"max=200"`
	Phone   string `json:"phone" validate:"max=20"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"max=300"`
}

// UpdateFirmRequest represents the request to update a firm
type UpdateFirmRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Tagline *string `json:"tagline" validate:"omitempty,max=200"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address" validate:"omitempty,max=300"`
}

// FirmResponse represents a firm in API responses
type FirmResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Tagline string    `json:"tagline"`
	Phone   string    `json:"phone"`
	Email   string    `json:"email"`
	Address string    `json:"address"`
}

// CreateFirm creates a new firm tenant
func (s *FirmService) CreateFirm(req *CreateFirmRequest) (*FirmResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if existing, err := s.repo.GetByName(req.Name); err == nil && existing != nil {
		return nil, apperrors.ErrFirmExists
	}

	firm := &models.Firm{
		Name:    req.Name,
		Tagline: req.Tagline,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := s.repo.Create(firm); err != nil {
		return nil, fmt.Errorf("failed to create firm: %w", err)
	}

	response := s.toResponse(firm)
	return &response, nil
}

// GetFirmByID retrieves a firm by its ID
func (s *FirmService) GetFirmByID(id uuid.UUID) (*FirmResponse, error) {
	firm, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFirmNotFound
		}
		return nil, fmt.Errorf("failed to get firm: %w", err)
	}

	response := s.toResponse(firm)
	return &response, nil
}

// UpdateFirm applies a partial update to a firm
func (s *FirmService) UpdateFirm(id uuid.UUID, req *UpdateFirmRequest) (*FirmResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	firm, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFirmNotFound
		}
		return nil, fmt.Errorf("failed to get firm: %w", err)
	}

	if req.Name != nil {
		firm.Name = *req.Name
	}
	if req.Tagline != nil {
		firm.Tagline = *req.Tagline
	}
	if req.Phone != nil {
		firm.Phone = *req.Phone
	}
	if req.Email != nil {
		firm.Email = *req.Email
	}
	if req.Address != nil {
		firm.Address = *req.Address
	}

	if err := s.repo.Update(firm); err != nil {
		return nil, fmt.Errorf("failed to update firm: %w", err)
	}

	response := s.toResponse(firm)
	return &response, nil
}

// toResponse converts a Firm model to API response
func (s *FirmService) toResponse(firm *models.Firm) FirmResponse {
	return FirmResponse{
		ID:      firm.ID,
		Name:    firm.Name,
		Tagline: firm.Tagline,
		Phone:   firm.Phone,
		Email:   firm.Email,
		Address: firm.Address,
	}
}

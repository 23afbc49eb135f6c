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

// FreelancerService provides freelancer-related business logic
type FreelancerService struct {
	repo      repository.FreelancerRepositoryInterface
	validator *validator.Validate
}

// Ensure FreelancerService implements FreelancerServiceInterface
var _ FreelancerServiceInterface = (*FreelancerService)(nil)

// NewFreelancerService creates a new FreelancerService
func NewFreelancerService(repo repository.FreelancerRepositoryInterface, validator *validator.Validate) *FreelancerService {
	return &FreelancerService{
		repo:      repo,
		validator: validator,
	}
}

// CreateFreelancerRequest represents the request to create a freelancer
type CreateFreelancerRequest struct {
	FullName  string  `json:"full_name" validate:"required,min=1,max=100"`
	Role      string  `json:"role" validate:"required,max=50"`
	Phone     string  `json:"phone" validate:"required,max=20"`
	Email     string  `json:"email" validate:"omitempty,email"`
	DailyRate float64 `json:"daily_rate" validate:"min=0"`
}

// UpdateFreelancerRequest represents the request to update a freelancer
type UpdateFreelancerRequest struct {
	FullName  *string  `json:"full_name" validate:"omitempty,min=1,max=100"`
	Role      *string  `json:"role" validate:"omitempty,max=50"`
	Phone     *string  `json:"phone" validate:"omitempty,max=20"`
	Email     *string  `json:"email" validate:"omitempty,email"`
	DailyRate *float64 `json:"daily_rate" validate:"omitempty,min=0"`
}

// FreelancerResponse represents a freelancer in API responses
type FreelancerResponse struct {
	ID        uuid.UUID `json:"id"`
	FirmID    uuid.UUID `json:"firm_id"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	DailyRate float64   `json:"daily_rate"`
}

// FreelancerListResponse represents a paginated list of freelancers
type FreelancerListResponse struct {
	Freelancers []FreelancerResponse `json:"freelancers"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// CreateFreelancer creates a new freelancer under the firm
func (s *FreelancerService) CreateFreelancer(firmID uuid.UUID, req *CreateFreelancerRequest) (*FreelancerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	freelancer := &models.Freelancer{
		FirmID:    firmID,
		FullName:  req.FullName,
		Role:      req.Role,
		Phone:     req.Phone,
		Email:     req.Email,
		DailyRate: req.DailyRate,
	}
	if err := s.repo.Create(freelancer); err != nil {
		return nil, fmt.Errorf("failed to create freelancer: %w", err)
	}

	response := s.toResponse(freelancer)
	return &response, nil
}

// GetFreelancerByID retrieves a freelancer, enforcing firm ownership
func (s *FreelancerService) GetFreelancerByID(firmID, id uuid.UUID) (*FreelancerResponse, error) {
	freelancer, err := s.getOwned(firmID, id)
	if err != nil {
		return nil, err
	}

	response := s.toResponse(freelancer)
	return &response, nil
}

// ListFreelancers retrieves the firm's freelancers with pagination
func (s *FreelancerService) ListFreelancers(firmID uuid.UUID, page, pageSize int) (*FreelancerListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	freelancers, total, err := s.repo.GetByFirmID(firmID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list freelancers: %w", err)
	}

	responses := make([]FreelancerResponse, len(freelancers))
	for i, f := range freelancers {
		responses[i] = s.toResponse(&f)
	}

	return &FreelancerListResponse{
		Freelancers: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// UpdateFreelancer applies a partial update to a freelancer
func (s *FreelancerService) UpdateFreelancer(firmID, id uuid.UUID, req *UpdateFreelancerRequest) (*FreelancerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	freelancer, err := s.getOwned(firmID, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		freelancer.FullName = *req.FullName
	}
	if req.Role != nil {
		freelancer.Role = *req.Role
	}
	if req.Phone != nil {
		freelancer.Phone = *req.Phone
	}
	if req.Email != nil {
		freelancer.Email = *req.Email
	}
	if req.DailyRate != nil {
		freelancer.DailyRate = *req.DailyRate
	}

	if err := s.repo.Update(freelancer); err != nil {
		return nil, fmt.Errorf("failed to update freelancer: %w", err)
	}

	response := s.toResponse(freelancer)
	return &response, nil
}

// DeleteFreelancer removes a freelancer
func (s *FreelancerService) DeleteFreelancer(firmID, id uuid.UUID) error {
	if _, err := s.getOwned(firmID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete freelancer: %w", err)
	}
	return nil
}

func (s *FreelancerService) getOwned(firmID, id uuid.UUID) (*models.Freelancer, error) {
	freelancer, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFreelancerNotFound
		}
		return nil, fmt.Errorf("failed to get freelancer: %w", err)
	}
	if freelancer.FirmID != firmID {
		return nil, apperrors.ErrFirmMismatch
	}
	return freelancer, nil
}

// toResponse converts a Freelancer model to API response
func (s *FreelancerService) toResponse(freelancer *models.Freelancer) FreelancerResponse {
	return FreelancerResponse{
		ID:        freelancer.ID,
		FirmID:    freelancer.FirmID,
		FullName:  freelancer.FullName,
		Role:      freelancer.Role,
		Phone:     freelancer.Phone,
		Email:     freelancer.Email,
		DailyRate: freelancer.DailyRate,
	}
}

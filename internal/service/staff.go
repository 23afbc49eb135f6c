package service

import (
	"errors"
	"fmt"

	"studio-manager-backend/internal/database/models"
	apperrors "studio-manager-backend/internal/errors"
	"studio-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// StaffService provides staff-related business logic
type StaffService struct {
	repo      repository.StaffRepositoryInterface
	validator *validator.Validate
}

// Ensure StaffService implements StaffServiceInterface
var _ StaffServiceInterface = (*StaffService)(nil)

// NewStaffService creates a new StaffService
func NewStaffService(repo repository.StaffRepositoryInterface, validator *validator.Validate) *StaffService {
	return &StaffService{
		repo:      repo,
		validator: validator,
	}
}

// CreateStaffRequest represents the request to create a staff member
type CreateStaffRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=100"`
	Role     string `json:"role" validate:"required,max=50"`
	Phone    string `json:"phone" validate:"required,max=20"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8,max=72"`
}

// UpdateStaffRequest represents the request to update a staff member
type UpdateStaffRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=100"`
	Role     *string `json:"role" validate:"omitempty,max=50"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
	IsActive *bool   `json:"is_active"`
}

// StaffResponse represents a staff member in API responses
type StaffResponse struct {
	ID       uuid.UUID `json:"id"`
	FirmID   uuid.UUID `json:"firm_id"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	Phone    string    `json:"phone"`
	Email    string    `json:"email"`
	IsActive bool      `json:"is_active"`
}

// StaffListResponse represents a paginated list of staff members
type StaffListResponse struct {
	Staff    []StaffResponse `json:"staff"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// CreateStaff creates a new staff member. A password is only required when
// the member should be able to log in.
func (s *StaffService) CreateStaff(firmID uuid.UUID, req *CreateStaffRequest) (*StaffResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.Email != "" {
		if existing, err := s.repo.GetByEmail(req.Email); err == nil && existing != nil {
			return nil, apperrors.ErrStaffExists
		}
	}

	member := &models.Staff{
		FirmID:   firmID,
		FullName: req.FullName,
		Role:     req.Role,
		Phone:    req.Phone,
		Email:    req.Email,
		IsActive: true,
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		member.PasswordHash = string(hash)
	}

	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}

	response := s.toResponse(member)
	return &response, nil
}

// GetStaffByID retrieves a staff member, enforcing firm ownership
func (s *StaffService) GetStaffByID(firmID, id uuid.UUID) (*StaffResponse, error) {
	member, err := s.getOwned(firmID, id)
	if err != nil {
		return nil, err
	}

	response := s.toResponse(member)
	return &response, nil
}

// ListStaff retrieves the firm's staff with pagination
func (s *StaffService) ListStaff(firmID uuid.UUID, activeOnly bool, page, pageSize int) (*StaffListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	var (
		staff []models.Staff
		total int64
		err   error
	)
	if activeOnly {
		staff, total, err = s.repo.GetActiveByFirmID(firmID, pageSize, offset)
	} else {
		staff, total, err = s.repo.GetByFirmID(firmID, pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	responses := make([]StaffResponse, len(staff))
	for i, m := range staff {
		responses[i] = s.toResponse(&m)
	}

	return &StaffListResponse{
		Staff:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateStaff applies a partial update to a staff member
func (s *StaffService) UpdateStaff(firmID, id uuid.UUID, req *UpdateStaffRequest) (*StaffResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	member, err := s.getOwned(firmID, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		member.FullName = *req.FullName
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		member.PasswordHash = string(hash)
	}

	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update staff member: %w", err)
	}

	response := s.toResponse(member)
	return &response, nil
}

// DeleteStaff removes a staff member. Past assignments keep their rows; only
// the person record goes away.
func (s *StaffService) DeleteStaff(firmID, id uuid.UUID) error {
	if _, err := s.getOwned(firmID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	return nil
}

func (s *StaffService) getOwned(firmID, id uuid.UUID) (*models.Staff, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	if member.FirmID != firmID {
		return nil, apperrors.ErrFirmMismatch
	}
	return member, nil
}

// toResponse converts a Staff model to API response
func (s *StaffService) toResponse(member *models.Staff) StaffResponse {
	return StaffResponse{
		ID:       member.ID,
		FirmID:   member.FirmID,
		FullName: member.FullName,
		Role:     member.Role,
		Phone:    member.Phone,
		Email:    member.Email,
		IsActive: member.IsActive,
	}
}

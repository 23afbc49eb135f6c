package repository

import (
	"studio-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffRepository handles database operations for staff members
type StaffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// Create creates a new staff member
func (r *StaffRepository) Create(staff *models.Staff) error {
	return r.db.Create(staff).Error
}

// GetByID retrieves a staff member by ID
func (r *StaffRepository) GetByID(id uuid.UUID) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.First(&staff, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

// GetByEmail retrieves a staff member by email (login)
func (r *StaffRepository) GetByEmail(email string) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.First(&staff, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

// GetByFirmID retrieves all staff members for a firm
func (r *StaffRepository) GetByFirmID(firmID uuid.UUID, limit, offset int) ([]models.Staff, int64, error) {
	var staff []models.Staff
	var total int64

	if err := r.db.Model(&models.Staff{}).Where("firm_id = ?", firmID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("firm_id = ?", firmID).Order("full_name ASC").Limit(limit).Offset(offset).Find(&staff).Error
	return staff, total, err
}

// ListByFirmID retrieves every staff member for a firm without pagination,
// for directory merging
func (r *StaffRepository) ListByFirmID(firmID uuid.UUID) ([]models.Staff, error) {
	var staff []models.Staff
	err := r.db.Where("firm_id = ?", firmID).Order("full_name ASC").Find(&staff).Error
	return staff, err
}

// GetActiveByFirmID retrieves active staff members for a firm
func (r *StaffRepository) GetActiveByFirmID(firmID uuid.UUID, limit, offset int) ([]models.Staff, int64, error) {
	var staff []models.Staff
	var total int64

	q := r.db.Model(&models.Staff{}).Where("firm_id = ? AND is_active = ?", firmID, true)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("full_name ASC").Limit(limit).Offset(offset).Find(&staff).Error
	return staff, total, err
}

// Update updates a staff member
func (r *StaffRepository) Update(staff *models.Staff) error {
	return r.db.Save(staff).Error
}

// Delete deletes a staff member
func (r *StaffRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Staff{}, "id = ?", id).Error
}

package repository

import (
	"studio-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FreelancerRepository handles database operations for freelancers
type FreelancerRepository struct {
	db *gorm.DB
}

// NewFreelancerRepository creates a new freelancer repository
func NewFreelancerRepository(db *gorm.DB) *FreelancerRepository {
	return &FreelancerRepository{db: db}
}

// Create creates a new freelancer
func (r *FreelancerRepository) Create(freelancer *models.Freelancer) error {
	return r.db.Create(freelancer).Error
}

// GetByID retrieves a freelancer by ID
func (r *FreelancerRepository) GetByID(id uuid.UUID) (*models.Freelancer, error) {
	var freelancer models.Freelancer
	err := r.db.First(&freelancer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &freelancer, nil
}

// GetByFirmID retrieves all freelancers for a firm
func (r *FreelancerRepository) GetByFirmID(firmID uuid.UUID, limit, offset int) ([]models.Freelancer, int64, error) {
	var freelancers []models.Freelancer
	var total int64

	if err := r.db.Model(&models.Freelancer{}).Where("firm_id = ?", firmID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("firm_id = ?", firmID).Order("full_name ASC").Limit(limit).Offset(offset).Find(&freelancers).Error
	return freelancers, total, err
}

// ListByFirmID retrieves every freelancer for a firm without pagination,
// for directory merging
func (r *FreelancerRepository) ListByFirmID(firmID uuid.UUID) ([]models.Freelancer, error) {
	var freelancers []models.Freelancer
	err := r.db.Where("firm_id = ?", firmID).Order("full_name ASC").Find(&freelancers).Error
	return freelancers, err
}

// Update updates a freelancer
func (r *FreelancerRepository) Update(freelancer *models.Freelancer) error {
	return r.db.Save(freelancer).Error
}

// Delete deletes a freelancer
func (r *FreelancerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Freelancer{}, "id = ?", id).Error
}

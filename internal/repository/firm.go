package repository

import (
	"studio-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FirmRepository handles database operations for firms
type FirmRepository struct {
	db *gorm.DB
}

// NewFirmRepository creates a new firm repository
func NewFirmRepository(db *gorm.DB) *FirmRepository {
	return &FirmRepository{db: db}
}

// Create creates a new firm
func (r *FirmRepository) Create(firm *models.Firm) error {
	return r.db.Create(firm).Error
}

// GetByID retrieves a firm by ID
func (r *FirmRepository) GetByID(id uuid.UUID) (*models.Firm, error) {
	var firm models.Firm
	err := r.db.First(&firm, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &firm, nil
}

// GetByName retrieves a firm by its unique name
func (r *FirmRepository) GetByName(name string) (*models.Firm, error) {
	var firm models.Firm
	err := r.db.First(&firm, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &firm, nil
}

// GetAll retrieves all firms with pagination
func (r *FirmRepository) GetAll(limit, offset int) ([]models.Firm, int64, error) {
	var firms []models.Firm
	var total int64

	if err := r.db.Model(&models.Firm{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&firms).Error
	return firms, total, err
}

// Update updates a firm
func (r *FirmRepository) Update(firm *models.Firm) error {
	return r.db.Save(firm).Error
}

// Delete deletes a firm
func (r *FirmRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Firm{}, "id = ?", id).Error
}

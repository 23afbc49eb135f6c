package repository

import (
	"studio-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuotationRepository handles database operations for quotations
type QuotationRepository struct {
	db *gorm.DB
}

// NewQuotationRepository creates a new quotation repository
func NewQuotationRepository(db *gorm.DB) *QuotationRepository {
	return &QuotationRepository{db: db}
}

// Create creates a new quotation
func (r *QuotationRepository) Create(quotation *models.Quotation) error {
	return r.db.Create(quotation).Error
}

// GetByID retrieves a quotation by ID
func (r *QuotationRepository) GetByID(id uuid.UUID) (*models.Quotation, error) {
	var quotation models.Quotation
	err := r.db.First(&quotation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &quotation, nil
}

// GetWithClient retrieves a quotation with its client preloaded
func (r *QuotationRepository) GetWithClient(id uuid.UUID) (*models.Quotation, error) {
	var quotation models.Quotation
	err := r.db.Preload("Client").First(&quotation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &quotation, nil
}

// GetByFirmID retrieves all quotations for a firm
func (r *QuotationRepository) GetByFirmID(firmID uuid.UUID, limit, offset int) ([]models.Quotation, int64, error) {
	var quotations []models.Quotation
	var total int64

	if err := r.db.Model(&models.Quotation{}).Where("firm_id = ?", firmID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("firm_id = ?", firmID).Order("event_date DESC").Limit(limit).Offset(offset).Find(&quotations).Error
	return quotations, total, err
}

// GetByStatus retrieves quotations for a firm filtered by status
func (r *QuotationRepository) GetByStatus(firmID uuid.UUID, status models.QuotationStatus, limit, offset int) ([]models.Quotation, int64, error) {
	var quotations []models.Quotation
	var total int64

	q := r.db.Model(&models.Quotation{}).Where("firm_id = ? AND status = ?", firmID, status)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("event_date DESC").Limit(limit).Offset(offset).Find(&quotations).Error
	return quotations, total, err
}

// Update updates a quotation
func (r *QuotationRepository) Update(quotation *models.Quotation) error {
	return r.db.Save(quotation).Error
}

// Delete deletes a quotation
func (r *QuotationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Quotation{}, "id = ?", id).Error
}

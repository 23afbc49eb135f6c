package repository

import (
	"studio-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentRepository handles database operations for payments
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create creates a new payment
func (r *PaymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

// GetByID retrieves a payment by ID
func (r *PaymentRepository) GetByID(id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetByEventID retrieves all payments for an event
func (r *PaymentRepository) GetByEventID(eventID uuid.UUID, limit, offset int) ([]models.Payment, int64, error) {
	var payments []models.Payment
	var total int64

	if err := r.db.Model(&models.Payment{}).Where("event_id = ?", eventID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("event_id = ?", eventID).Order("paid_at DESC").Limit(limit).Offset(offset).Find(&payments).Error
	return payments, total, err
}

// GetByFirmID retrieves all payments for a firm
func (r *PaymentRepository) GetByFirmID(firmID uuid.UUID, limit, offset int) ([]models.Payment, int64, error) {
	var payments []models.Payment
	var total int64

	if err := r.db.Model(&models.Payment{}).Where("firm_id = ?", firmID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("firm_id = ?", firmID).Order("paid_at DESC").Limit(limit).Offset(offset).Find(&payments).Error
	return payments, total, err
}

// Update updates a payment
func (r *PaymentRepository) Update(payment *models.Payment) error {
	return r.db.Save(payment).Error
}

// Delete deletes a payment
func (r *PaymentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Payment{}, "id = ?", id).Error
}

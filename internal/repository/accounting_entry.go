package repository

import (
	"time"

	"studio-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountingEntryRepository handles database operations for accounting entries
type AccountingEntryRepository struct {
	db *gorm.DB
}

// NewAccountingEntryRepository creates a new accounting entry repository
func NewAccountingEntryRepository(db *gorm.DB) *AccountingEntryRepository {
	return &AccountingEntryRepository{db: db}
}

// Create creates a new accounting entry
func (r *AccountingEntryRepository) Create(entry *models.AccountingEntry) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves an accounting entry by ID
func (r *AccountingEntryRepository) GetByID(id uuid.UUID) (*models.AccountingEntry, error) {
	var entry models.AccountingEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByFirmID retrieves all accounting entries for a firm
func (r *AccountingEntryRepository) GetByFirmID(firmID uuid.UUID, limit, offset int) ([]models.AccountingEntry, int64, error) {
	var entries []models.AccountingEntry
	var total int64

	if err := r.db.Model(&models.AccountingEntry{}).Where("firm_id = ?", firmID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("firm_id = ?", firmID).Order("entry_date DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}

// GetByPeriod retrieves entries for a firm within a date range
func (r *AccountingEntryRepository) GetByPeriod(firmID uuid.UUID, from, to time.Time, limit, offset int) ([]models.AccountingEntry, int64, error) {
	var entries []models.AccountingEntry
	var total int64

	q := r.db.Model(&models.AccountingEntry{}).Where("firm_id = ? AND entry_date >= ? AND entry_date <= ?", firmID, from, to)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("entry_date DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}

// GetByKind retrieves entries for a firm filtered by kind
func (r *AccountingEntryRepository) GetByKind(firmID uuid.UUID, kind models.EntryKind, limit, offset int) ([]models.AccountingEntry, int64, error) {
	var entries []models.AccountingEntry
	var total int64

	q := r.db.Model(&models.AccountingEntry{}).Where("firm_id = ? AND kind = ?", firmID, kind)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("entry_date DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}

// Update updates an accounting entry
func (r *AccountingEntryRepository) Update(entry *models.AccountingEntry) error {
	return r.db.Save(entry).Error
}

// Delete deletes an accounting entry
func (r *AccountingEntryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AccountingEntry{}, "id = ?", id).Error
}

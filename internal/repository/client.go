package repository

import (
	"studio-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientRepository handles database operations for clients
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create creates a new client
func (r *ClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// GetByID retrieves a client by ID
func (r *ClientRepository) GetByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// GetByFirmID retrieves all clients for a firm
func (r *ClientRepository) GetByFirmID(firmID uuid.UUID, limit, offset int) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64

	if err := r.db.Model(&models.Client{}).Where("firm_id = ?", firmID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("firm_id = ?", firmID).Order("name ASC").Limit(limit).Offset(offset).Find(&clients).Error
	return clients, total, err
}

// Search retrieves clients matching the query by name or phone
func (r *ClientRepository) Search(firmID uuid.UUID, query string, limit, offset int) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64

	pattern := "%" + query + "%"
	q := r.db.Model(&models.Client{}).Where("firm_id = ? AND (name ILIKE ? OR phone LIKE ?)", firmID, pattern, pattern)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&clients).Error
	return clients, total, err
}

// Update updates a client
func (r *ClientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

// Delete deletes a client
func (r *ClientRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Client{}, "id = ?", id).Error
}

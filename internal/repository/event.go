package repository

import (
	"time"

	"studio-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepository handles database operations for events
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetWithClient retrieves an event with its client preloaded
func (r *EventRepository) GetWithClient(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.Preload("Client").First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetByFirmID retrieves all events for a firm
func (r *EventRepository) GetByFirmID(firmID uuid.UUID, limit, offset int) ([]models.Event, int64, error) {
	var events []models.Event
	var total int64

	if err := r.db.Model(&models.Event{}).Where("firm_id = ?", firmID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("firm_id = ?", firmID).Order("event_date DESC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}

// GetUpcoming retrieves events starting between now and now+days
func (r *EventRepository) GetUpcoming(firmID uuid.UUID, days int, limit, offset int) ([]models.Event, int64, error) {
	var events []models.Event
	var total int64

	now := time.Now()
	until := now.AddDate(0, 0, days)
	q := r.db.Model(&models.Event{}).Where("firm_id = ? AND event_date >= ? AND event_date <= ?", firmID, now, until)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("event_date ASC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}

// Update updates an event
func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete deletes an event
func (r *EventRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Event{}, "id = ?", id).Error
}

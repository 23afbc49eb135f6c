package repository

import (
	"studio-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for staff assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// GetByEventID retrieves all assignments for an event in stable retrieval
// order (day, then insertion order). The slot reconciler relies on this
// ordering to keep slot positions stable across loads.
func (r *AssignmentRepository) GetByEventID(eventID uuid.UUID) ([]models.StaffAssignment, error) {
	var assignments []models.StaffAssignment
	err := r.db.Where("event_id = ?", eventID).Order("day_number ASC, created_at ASC").Find(&assignments).Error
	return assignments, err
}

// GetAllForFirm retrieves every assignment in the firm, optionally excluding
// one event, with the owning event preloaded. Used for conflict scanning
// across all other bookings.
func (r *AssignmentRepository) GetAllForFirm(firmID uuid.UUID, excludeEventID *uuid.UUID) ([]models.StaffAssignment, error) {
	var assignments []models.StaffAssignment
	q := r.db.Preload("Event").Where("firm_id = ?", firmID)
	if excludeEventID != nil {
		q = q.Where("event_id != ?", *excludeEventID)
	}
	err := q.Order("day_date ASC").Find(&assignments).Error
	return assignments, err
}

// GetByPerson retrieves all assignments held by one person across the firm
func (r *AssignmentRepository) GetByPerson(firmID uuid.UUID, kind models.PersonKind, personID uuid.UUID) ([]models.StaffAssignment, error) {
	var assignments []models.StaffAssignment
	q := r.db.Preload("Event").Where("firm_id = ?", firmID)
	if kind == models.PersonKindFreelancer {
		q = q.Where("freelancer_id = ?", personID)
	} else {
		q = q.Where("staff_id = ?", personID)
	}
	err := q.Order("day_date ASC").Find(&assignments).Error
	return assignments, err
}

// ReplaceForEvent atomically replaces the full assignment set of an event.
// Delete and insert run in one transaction so a failure can never leave the
// event with an empty set; the prior rows survive a rollback intact.
func (r *AssignmentRepository) ReplaceForEvent(eventID uuid.UUID, rows []models.StaffAssignment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", eventID).Delete(&models.StaffAssignment{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// DeleteByEventID deletes all assignments for an event
func (r *AssignmentRepository) DeleteByEventID(eventID uuid.UUID) error {
	return r.db.Where("event_id = ?", eventID).Delete(&models.StaffAssignment{}).Error
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// StaffAssignment represents one person filling one role slot on one event day.
//
// Exactly one of StaffID/FreelancerID is set, indicated by PersonKind. Rows
// are replaced wholesale on every event save and have no lifecycle of their
// own beyond the owning event.
type StaffAssignment struct {
	BaseModel
	FirmID       uuid.UUID      `json:"firm_id" gorm:"type:uuid;not null;index" validate:"required"`
	EventID      uuid.UUID      `json:"event_id" gorm:"type:uuid;not null;index" validate:"required"`
	StaffID      *uuid.UUID     `json:"staff_id" gorm:"type:uuid;index"`
	FreelancerID *uuid.UUID     `json:"freelancer_id" gorm:"type:uuid;index"`
	PersonKind   PersonKind     `json:"person_kind" gorm:"type:varchar(20);not null" validate:"required"`
	Role         AssignmentRole `json:"role" gorm:"type:varchar(30);not null" validate:"required"`
	DayNumber    int            `json:"day_number" gorm:"not null" validate:"required,min=1"`
	DayDate      time.Time      `json:"day_date" gorm:"type:date;not null" validate:"required"`

	// Relationships
	Firm       Firm        `json:"firm,omitempty" gorm:"foreignKey:FirmID;constraint:OnDelete:CASCADE"`
	Event      Event       `json:"event,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Staff      *Staff      `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
	Freelancer *Freelancer `json:"freelancer,omitempty" gorm:"foreignKey:FreelancerID"`
}

// TableName returns the table name for StaffAssignment
func (StaffAssignment) TableName() string {
	return "staff_assignments"
}

// PersonID returns the id of whichever person backs the assignment
func (a *StaffAssignment) PersonID() uuid.UUID {
	if a.PersonKind == PersonKindFreelancer && a.FreelancerID != nil {
		return *a.FreelancerID
	}
	if a.StaffID != nil {
		return *a.StaffID
	}
	return uuid.Nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a booked (possibly multi-day) shoot.
//
// QuotationDetails is a snapshot captured when the event is created from a
// quotation: slot requirements are always resolved from this snapshot, never
// from a live re-read, so later edits to the quotation do not reshape an
// existing event.
type Event struct {
	BaseModel
	FirmID            uuid.UUID         `json:"firm_id" gorm:"type:uuid;not null;index" validate:"required"`
	ClientID          uuid.UUID         `json:"client_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title             string            `json:"title" gorm:"size:150;not null" validate:"required,min=1,max=150"`
	EventType         EventType         `json:"event_type" gorm:"type:varchar(30);not null" validate:"required"`
	EventDate         time.Time         `json:"event_date" gorm:"type:date;not null" validate:"required"`
	TotalDays         int               `json:"total_days" gorm:"not null;default:1" validate:"required,min=1"`
	Venue             string            `json:"venue" gorm:"size:200"`
	QuotationSourceID *uuid.UUID        `json:"quotation_source_id" gorm:"type:uuid;index"`
	QuotationDetails  *QuotationDetails `json:"quotation_details" gorm:"type:jsonb"`

	// Relationships
	Firm            Firm       `json:"firm,omitempty" gorm:"foreignKey:FirmID;constraint:OnDelete:CASCADE"`
	Client          Client     `json:"client,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	QuotationSource *Quotation `json:"quotation_source,omitempty" gorm:"foreignKey:QuotationSourceID"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}

// DayDate returns the calendar date of the given 1-based event day
func (e *Event) DayDate(dayNumber int) time.Time {
	return e.EventDate.AddDate(0, 0, dayNumber-1)
}

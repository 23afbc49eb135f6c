package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment represents money collected against an event
type Payment struct {
	BaseModel
	FirmID  uuid.UUID     `json:"firm_id" gorm:"type:uuid;not null;index" validate:"required"`
	EventID uuid.UUID     `json:"event_id" gorm:"type:uuid;not null;index" validate:"required"`
	Amount  float64       `json:"amount" gorm:"not null" validate:"required,gt=0"`
	Method  PaymentMethod `json:"method" gorm:"type:varchar(20);not null" validate:"required"`
	PaidAt  time.Time     `json:"paid_at" gorm:"type:date;not null" validate:"required"`
	Note    string        `json:"note" gorm:"type:text"`

	// Relationships
	Firm  Firm  `json:"firm,omitempty" gorm:"foreignKey:FirmID;constraint:OnDelete:CASCADE"`
	Event Event `json:"event,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Payment
func (Payment) TableName() string {
	return "payments"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountingEntry represents a firm-level ledger row (income or expense)
type AccountingEntry struct {
	BaseModel
	FirmID    uuid.UUID  `json:"firm_id" gorm:"type:uuid;not null;index" validate:"required"`
	EventID   *uuid.UUID `json:"event_id" gorm:"type:uuid;index"`
	Kind      EntryKind  `json:"kind" gorm:"type:varchar(10);not null" validate:"required"`
	Category  string     `json:"category" gorm:"size:50;not null" validate:"required"`
	Amount    float64    `json:"amount" gorm:"not null" validate:"required,gt=0"`
	EntryDate time.Time  `json:"entry_date" gorm:"type:date;not null" validate:"required"`
	Note      string     `json:"note" gorm:"type:text"`

	// Relationships
	Firm  Firm   `json:"firm,omitempty" gorm:"foreignKey:FirmID;constraint:OnDelete:CASCADE"`
	Event *Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
}

// TableName returns the table name for AccountingEntry
func (AccountingEntry) TableName() string {
	return "accounting_entries"
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DayCrewConfig holds the crew counts a quotation promises for one event day.
// Older quotations may omit sameDayEditors and rely on the quotation-level
// sameDayEditing flag instead.
type DayCrewConfig struct {
	Photographers    int `json:"photographers"`
	Cinematographers int `json:"cinematographers"`
	Drone            int `json:"drone"`
	SameDayEditors   int `json:"sameDayEditors,omitempty"`
	OtherCrew        int `json:"otherCrew,omitempty"`
}

// QuotationDetails is the nested per-day crew configuration stored as jsonb,
// both on the quotation itself and as a snapshot on events created from it.
type QuotationDetails struct {
	Days           []DayCrewConfig `json:"days"`
	SameDayEditing bool            `json:"sameDayEditing"`
}

// Value implements driver.Valuer so QuotationDetails can be stored in a jsonb column
func (d *QuotationDetails) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner for reading QuotationDetails from a jsonb column
func (d *QuotationDetails) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported quotation details type %T", value)
	}
	return json.Unmarshal(raw, d)
}

// Quotation represents a priced proposal sent to a client for an event
type Quotation struct {
	BaseModel
	FirmID    uuid.UUID         `json:"firm_id" gorm:"type:uuid;not null;index" validate:"required"`
	ClientID  uuid.UUID         `json:"client_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title     string            `json:"title" gorm:"size:150;not null" validate:"required,min=1,max=150"`
	EventType EventType         `json:"event_type" gorm:"type:varchar(30);not null" validate:"required"`
	EventDate time.Time         `json:"event_date" gorm:"type:date;not null" validate:"required"`
	TotalDays int               `json:"total_days" gorm:"not null;default:1" validate:"required,min=1"`
	Amount    float64           `json:"amount" gorm:"not null" validate:"min=0"`
	Status    QuotationStatus   `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`
	Details   *QuotationDetails `json:"details" gorm:"type:jsonb"`
	Note      string            `json:"note" gorm:"type:text"`

	// Relationships
	Firm   Firm   `json:"firm,omitempty" gorm:"foreignKey:FirmID;constraint:OnDelete:CASCADE"`
	Client Client `json:"client,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Quotation
func (Quotation) TableName() string {
	return "quotations"
}

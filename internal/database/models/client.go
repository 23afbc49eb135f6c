package models

import "github.com/google/uuid"

// Client represents a studio customer who books events and receives quotations
type Client struct {
	BaseModel
	FirmID  uuid.UUID `json:"firm_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name    string    `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Phone   string    `json:"phone" gorm:"size:20;not null" validate:"required"`
	Email   string    `json:"email" gorm:"size:100"`
	Address string    `json:"address" gorm:"size:300"`

	// Relationships
	Firm Firm `json:"firm,omitempty" gorm:"foreignKey:FirmID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Client
func (Client) TableName() string {
	return "clients"
}

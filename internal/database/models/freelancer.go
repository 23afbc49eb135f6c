package models

import "github.com/google/uuid"

// Freelancer represents an external contractor hired per event day
type Freelancer struct {
	BaseModel
	FirmID   uuid.UUID `json:"firm_id" gorm:"type:uuid;not null;index" validate:"required"`
	FullName string    `json:"full_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Role     string    `json:"role" gorm:"size:50;not null" validate:"required"`
	Phone    string    `json:"phone" gorm:"size:20;not null" validate:"required"`
	Email    string    `json:"email" gorm:"size:100"`
	DailyRate float64  `json:"daily_rate" gorm:"default:0" validate:"min=0"`

	// Relationships
	Firm Firm `json:"firm,omitempty" gorm:"foreignKey:FirmID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Freelancer
func (Freelancer) TableName() string {
	return "freelancers"
}

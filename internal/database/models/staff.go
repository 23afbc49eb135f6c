package models

import "github.com/google/uuid"

// Staff represents an internal team member who can log in and be assigned to events
type Staff struct {
	BaseModel
	FirmID       uuid.UUID `json:"firm_id" gorm:"type:uuid;not null;index" validate:"required"`
	FullName     string    `json:"full_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Role         string    `json:"role" gorm:"size:50;not null" validate:"required"`
	Phone        string    `json:"phone" gorm:"size:20;not null" validate:"required"`
	Email        string    `json:"email" gorm:"size:100;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"size:100"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Firm Firm `json:"firm,omitempty" gorm:"foreignKey:FirmID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Staff
func (Staff) TableName() string {
	return "staff"
}

package models

// Firm represents a studio tenant; every other row is scoped to one firm
type Firm struct {
	BaseModel
	Name    string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Tagline string `json:"tagline" gorm:"size:200" validate:"max=200"`
	Phone   string `json:"phone" gorm:"size:20"`
	Email   string `json:"email" gorm:"size:100"`
	Address string `json:"address" gorm:"size:300"`
}

// TableName returns the table name for Firm
func (Firm) TableName() string {
	return "firms"
}

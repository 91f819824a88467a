package models

import "time"

// TimeSlot is an offerable appointment slot defined by the administrator.
// Date and Time are kept as strings ("2006-01-02", "15:04") because the
// slot identity for display purposes is the pair itself. Duplicates are
// allowed and not deduplicated.
type TimeSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date string `gorm:"size:10;not null;index" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	IsAvailable bool `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

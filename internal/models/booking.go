package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ServiceSnapshot is the denormalized copy of a service taken at booking
// time: name, chosen complexity and the full price table. Later edits to
// the service catalog never change a booking's recorded prices.
type ServiceSnapshot struct {
	Name       string     `json:"name"`
	Complexity string     `json:"complexity"`
	Prices     PriceTable `json:"prices"`
}

// ServiceSnapshots is stored as a jsonb array on the booking row.
type ServiceSnapshots []ServiceSnapshot

func (s ServiceSnapshots) Value() (driver.Value, error) {
	if s == nil {
		s = ServiceSnapshots{}
	}
	return json.Marshal(s)
}

func (s *ServiceSnapshots) Scan(value any) error {
	if value == nil {
		*s = ServiceSnapshots{}
		return nil
	}

	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for ServiceSnapshots")
	}

	return json.Unmarshal(b, s)
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint   `gorm:"index" json:"user_id"`
	UserEmail string `gorm:"size:100;index" json:"user_email"`

	Services ServiceSnapshots `gorm:"type:jsonb" json:"services"`

	// Requested appointment date and time.
	Date time.Time `json:"date"`

	PersonalName  string `gorm:"size:100" json:"personal_name"`
	PersonalPhone string `gorm:"size:20" json:"personal_phone"`
	PersonalEmail string `gorm:"size:100" json:"personal_email"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	// Soft-delete marker, independent of Status. Trashed bookings are
	// hidden from the dashboard and user views, visible in the trash
	// view, and can be restored or permanently removed.
	IsDeleted bool `gorm:"default:false;index" json:"is_deleted"`

	// Sum over the snapshot of prices[complexity], computed once at
	// creation. Never recomputed from the live catalog.
	TotalPrice float64 `json:"total_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

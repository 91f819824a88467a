package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// EmailList is a jsonb array of admin email addresses.
type EmailList []string

func (e EmailList) Value() (driver.Value, error) {
	if e == nil {
		e = EmailList{}
	}
	return json.Marshal(e)
}

func (e *EmailList) Scan(value any) error {
	if value == nil {
		*e = EmailList{}
		return nil
	}

	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for EmailList")
	}

	return json.Unmarshal(b, e)
}

// AdminList is a singleton record holding the admin allow-list. When no
// row exists the allow-list is exactly the bootstrap address.
type AdminList struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Emails EmailList `gorm:"type:jsonb" json:"emails"`

	UpdatedAt time.Time `json:"updated_at"`
}

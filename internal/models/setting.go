package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Known setting keys.
const (
	SettingAddress     = "address"
	SettingContactInfo = "contactInfo"
	SettingGeneral     = "general"
)

// JSONValue holds an arbitrary settings document. Last write wins.
type JSONValue map[string]any

func (j JSONValue) Value() (driver.Value, error) {
	if j == nil {
		j = JSONValue{}
	}
	return json.Marshal(j)
}

func (j *JSONValue) Scan(value any) error {
	if value == nil {
		*j = JSONValue{}
		return nil
	}

	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for JSONValue")
	}

	return json.Unmarshal(b, j)
}

type Setting struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Key   string    `gorm:"size:50;uniqueIndex;not null" json:"key"`
	Value JSONValue `gorm:"type:jsonb" json:"value"`

	UpdatedAt time.Time `json:"updated_at"`
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Complexity tiers of the price table. Every service carries a price
// for each tier.
const (
	ComplexitySimple = "Simple"
	ComplexityMedium = "Medium"
	ComplexityHard   = "Hard"
)

func IsValidComplexity(c string) bool {
	return c == ComplexitySimple || c == ComplexityMedium || c == ComplexityHard
}

// PriceTable maps a complexity tier to its price. Stored as jsonb.
type PriceTable map[string]float64

func (p PriceTable) Value() (driver.Value, error) {
	if p == nil {
		p = PriceTable{}
	}
	return json.Marshal(p)
}

func (p *PriceTable) Scan(value any) error {
	if value == nil {
		*p = PriceTable{}
		return nil
	}

	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for PriceTable")
	}

	return json.Unmarshal(b, p)
}

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string     `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Prices PriceTable `gorm:"type:jsonb" json:"prices"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

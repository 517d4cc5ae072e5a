package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// StringList stores a list of strings as a JSONB column.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal StringList: unsupported type %T", value)
	}

	return json.Unmarshal(data, l)
}

type Service struct {
	gorm.Model
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Features          StringList `json:"features" gorm:"type:jsonb"`
	Price             float64    `json:"price"`
	DiscountedPrice   float64    `json:"discounted_price"`
	DurationInMinutes int        `json:"duration_in_minutes"`
	Image             string     `json:"image"`
	IsAvailable       bool       `json:"is_available" gorm:"default:true"`
	CategoryID        uint       `json:"category_id"`
	Category          Category   `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

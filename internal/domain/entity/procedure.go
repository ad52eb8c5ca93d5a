package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DefaultRank sorts unranked rows to the bottom of the catalog.
const DefaultRank = 999

// Procedure is a catalog entry on the public price-comparison page.
type Procedure struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Rank        int        `gorm:"not null;default:999;index" json:"rank"`
	PriceKrw    int64      `gorm:"not null;default:0" json:"price_krw"`
	Category    string     `gorm:"type:varchar(100)" json:"category"`
	Description string     `gorm:"type:text" json:"description"`
	Clinics     StringList `gorm:"type:jsonb" json:"clinics"`
	IsHot       bool       `gorm:"not null;default:false" json:"is_hot"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Procedure) TableName() string {
	return "procedures"
}

// StringList stores a list of "Clinic:price" entries as a JSONB array.
type StringList []string

// Value returns json value, implement driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan scan value into StringList, implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := []string{}
	err := json.Unmarshal(bytes, &result)
	*l = StringList(result)
	return err
}

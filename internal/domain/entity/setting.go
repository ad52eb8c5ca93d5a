package entity

import "time"

// Setting is a key/value configuration row (e.g. exchange_rate). Read-only
// from the API's perspective; values are edited by direct administration.
type Setting struct {
	Key       string    `gorm:"type:varchar(100);primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Well-known setting keys.
const (
	SettingExchangeRate = "exchange_rate"
)

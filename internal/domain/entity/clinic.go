package entity

import "time"

// Clinic is a directory entry for a partner clinic.
type Clinic struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Category     string    `gorm:"type:varchar(100)" json:"category"`
	District     string    `gorm:"type:varchar(100)" json:"district"`
	Location     string    `gorm:"type:varchar(255)" json:"location"`
	Rating       float64   `gorm:"type:numeric(3,2);not null;default:0" json:"rating"`
	Reviews      int       `gorm:"not null;default:0" json:"reviews"`
	HeroImageURL string    `gorm:"type:text" json:"hero_image_url"`
	PriceFromUsd int       `gorm:"not null;default:0" json:"price_from_usd"`
	IsFeatured   bool      `gorm:"not null;default:false;index" json:"is_featured"`
	IsFreepass   bool      `gorm:"not null;default:false;index" json:"is_freepass"`
	SortRank     int       `gorm:"not null;default:999;index" json:"sort_rank"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Clinic) TableName() string {
	return "clinics"
}

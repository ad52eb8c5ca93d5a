package dto

import "time"

// Request DTOs

type CreateClinicRequest struct {
	Name         string  `json:"name" validate:"required,min=1"`
	Category     string  `json:"category" validate:"omitempty,max=100"`
	District     string  `json:"district" validate:"omitempty,max=100"`
	Location     string  `json:"location" validate:"omitempty,max=255"`
	Rating       float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Reviews      int     `json:"reviews" validate:"omitempty,gte=0"`
	HeroImageURL string  `json:"hero_image_url" validate:"omitempty"`
	PriceFromUsd int     `json:"price_from_usd" validate:"omitempty,gte=0"`
	IsFeatured   bool    `json:"is_featured"`
	IsFreepass   bool    `json:"is_freepass"`
	SortRank     *int    `json:"sort_rank" validate:"omitempty,gte=0"`
}

type BulkClinicRequest struct {
	Items []CreateClinicRequest `json:"items"`
}

type UpdateClinicRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=1"`
	Category     *string  `json:"category" validate:"omitempty,max=100"`
	District     *string  `json:"district" validate:"omitempty,max=100"`
	Location     *string  `json:"location" validate:"omitempty,max=255"`
	Rating       *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Reviews      *int     `json:"reviews" validate:"omitempty,gte=0"`
	HeroImageURL *string  `json:"hero_image_url" validate:"omitempty"`
	PriceFromUsd *int     `json:"price_from_usd" validate:"omitempty,gte=0"`
	IsFeatured   *bool    `json:"is_featured" validate:"omitempty"`
	IsFreepass   *bool    `json:"is_freepass" validate:"omitempty"`
	SortRank     *int     `json:"sort_rank" validate:"omitempty,gte=0"`
}

// Response DTOs

type ClinicResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	District     string    `json:"district"`
	Location     string    `json:"location"`
	Rating       float64   `json:"rating"`
	Reviews      int       `json:"reviews"`
	HeroImageURL string    `json:"hero_image_url"`
	PriceFromUsd int       `json:"price_from_usd"`
	IsFeatured   bool      `json:"is_featured"`
	IsFreepass   bool      `json:"is_freepass"`
	SortRank     int       `json:"sort_rank"`
	CreatedAt    time.Time `json:"created_at"`
}

package dto

import "time"

// Request DTOs

type CreateProcedureRequest struct {
	Name        string   `json:"name" validate:"required,min=1"`
	Rank        *int     `json:"rank" validate:"omitempty,gte=0"`
	PriceKrw    int64    `json:"price_krw" validate:"omitempty,gte=0"`
	Category    string   `json:"category" validate:"omitempty,max=100"`
	Description string   `json:"description" validate:"omitempty"`
	Clinics     []string `json:"clinics" validate:"omitempty"`
	IsHot       bool     `json:"is_hot"`
}

// BulkProcedureRequest is the Excel-import payload: the admin dashboard
// parses the sheet client-side and posts the rows as items[].
type BulkProcedureRequest struct {
	Items []CreateProcedureRequest `json:"items"`
}

type UpdateProcedureRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Rank        *int     `json:"rank" validate:"omitempty,gte=0"`
	PriceKrw    *int64   `json:"price_krw" validate:"omitempty,gte=0"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	Description *string  `json:"description" validate:"omitempty"`
	Clinics     []string `json:"clinics" validate:"omitempty"`
	IsHot       *bool    `json:"is_hot" validate:"omitempty"`
}

// Response DTOs

type ProcedureResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Rank        int       `json:"rank"`
	PriceKrw    int64     `json:"price_krw"`
	PriceUsd    int       `json:"price_usd,omitempty"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Clinics     []string  `json:"clinics"`
	IsHot       bool      `json:"is_hot"`
	CreatedAt   time.Time `json:"created_at"`
}

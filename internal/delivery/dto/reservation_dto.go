package dto

import "time"

// Request DTOs

type CreateReservationRequest struct {
	CustomerName  string `json:"customer_name" validate:"required,min=1,max=255"`
	ContactInfo   string `json:"contact_info" validate:"required,min=1,max=255"`
	MessengerType string `json:"messenger_type" validate:"required,min=1,max=50"`
	ProcedureName string `json:"procedure_name" validate:"required,min=1,max=255"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response DTOs

type ReservationResponse struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"user_id,omitempty"`
	CustomerName  string    `json:"customer_name"`
	ContactInfo   string    `json:"contact_info"`
	MessengerType string    `json:"messenger_type"`
	ProcedureName string    `json:"procedure_name"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

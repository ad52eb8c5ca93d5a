package dto

import "time"

// IssueStampRequest carries the reservation to stamp. A client-supplied
// user_id is deliberately not part of the contract: the stamp's user is
// always taken from the reservation row.
type IssueStampRequest struct {
	ReservationID int64 `json:"reservation_id" validate:"required,gt=0"`
}

type StampResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ReservationID int64     `json:"reservation_id"`
	IssuedBy      string    `json:"issued_by,omitempty"`
	IssuedAt      time.Time `json:"issued_at"`
}

// MeResponse is the admin self-check body.
type MeResponse struct {
	OK     bool   `json:"ok"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// ExchangeRateResponse is the public exchange-rate body.
type ExchangeRateResponse struct {
	Rate float64 `json:"rate"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the status of a booking request
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "Pending"
	ReservationStatusConfirmed ReservationStatus = "Confirmed"
	ReservationStatusCompleted ReservationStatus = "Completed"
	ReservationStatusCancelled ReservationStatus = "Cancelled"
)

// IsValid reports whether s is one of the four known statuses.
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusCompleted, ReservationStatusCancelled:
		return true
	}
	return false
}

// Reservation is a booking request submitted through the public form.
// UserID is nil for guest submissions.
type Reservation struct {
	ID            int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        *uuid.UUID        `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CustomerName  string            `gorm:"type:varchar(255);not null" json:"customer_name"`
	ContactInfo   string            `gorm:"type:varchar(255);not null" json:"contact_info"`
	MessengerType string            `gorm:"type:varchar(50);not null" json:"messenger_type"`
	ProcedureName string            `gorm:"type:varchar(255);not null" json:"procedure_name"`
	Status        ReservationStatus `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	CreatedAt     time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Reservation) TableName() string {
	return "reservations"
}

// IsCompleted checks if the reservation is eligible for stamp issuance.
func (r *Reservation) IsCompleted() bool {
	return r.Status == ReservationStatusCompleted
}

// IsGuest checks if the reservation has no linked user identity.
func (r *Reservation) IsGuest() bool {
	return r.UserID == nil
}

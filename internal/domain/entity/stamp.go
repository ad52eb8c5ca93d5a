package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stamp is a loyalty credit granted for a completed visit. Rows are
// insert-only; the stamps_completed_only trigger is the authoritative
// enforcement of the eligibility rule (see migrations), the usecase
// pre-check only exists for friendlier errors.
type Stamp struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ReservationID int64      `gorm:"not null;index" json:"reservation_id"`
	IssuedBy      *uuid.UUID `gorm:"type:uuid" json:"issued_by,omitempty"`
	IssuedAt      time.Time  `gorm:"autoCreateTime;index" json:"issued_at"`

	// Relationships
	Reservation *Reservation `gorm:"foreignKey:ReservationID" json:"reservation,omitempty"`
}

func (Stamp) TableName() string {
	return "stamps"
}

func (s *Stamp) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

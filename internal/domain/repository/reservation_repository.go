package repository

import (
	"kbeauty-insider/internal/domain/entity"

	"gorm.io/gorm"
)

type ReservationRepository interface {
	Create(db *gorm.DB, reservation *entity.Reservation) error
	FindByID(db *gorm.DB, id int64) (*entity.Reservation, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.Reservation, error)
	UpdateStatus(db *gorm.DB, id int64, status entity.ReservationStatus) (*entity.Reservation, error)
	Delete(db *gorm.DB, id int64) (int64, error)
}

package repository

import (
	"errors"

	"kbeauty-insider/internal/domain/entity"
	domainRepo "kbeauty-insider/internal/domain/repository"

	"gorm.io/gorm"
)

type reservationRepository struct{}

func NewReservationRepository() domainRepo.ReservationRepository {
	return &reservationRepository{}
}

func (r *reservationRepository) Create(db *gorm.DB, reservation *entity.Reservation) error {
	return db.Create(reservation).Error
}

func (r *reservationRepository) FindByID(db *gorm.DB, id int64) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := db.Where("id = ?", id).First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	err := db.Order("created_at desc").Limit(limit).Offset(offset).Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) UpdateStatus(db *gorm.DB, id int64, status entity.ReservationStatus) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := db.Where("id = ?", id).First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	reservation.Status = status
	if err := db.Save(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Reservation{})
	return result.RowsAffected, result.Error
}

package repository

import (
	"kbeauty-insider/internal/domain/entity"
	domainRepo "kbeauty-insider/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stampRepository struct{}

func NewStampRepository() domainRepo.StampRepository {
	return &stampRepository{}
}

func (r *stampRepository) Create(db *gorm.DB, stamp *entity.Stamp) error {
	return db.Create(stamp).Error
}

func (r *stampRepository) FindAll(db *gorm.DB) ([]entity.Stamp, error) {
	var stamps []entity.Stamp
	err := db.Order("issued_at desc").Find(&stamps).Error
	if err != nil {
		return nil, err
	}
	return stamps, nil
}

func (r *stampRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Stamp{})
	return result.RowsAffected, result.Error
}

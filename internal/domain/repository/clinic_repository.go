package repository

import (
	"kbeauty-insider/internal/domain/entity"

	"gorm.io/gorm"
)

// ClinicFilter narrows public clinic listings. Zero value means no filter.
type ClinicFilter struct {
	Featured bool
	Freepass bool
}

type ClinicRepository interface {
	Create(db *gorm.DB, clinic *entity.Clinic) error
	CreateBatch(db *gorm.DB, clinics []entity.Clinic) error
	FindByID(db *gorm.DB, id int64) (*entity.Clinic, error)
	FindAllBySortRank(db *gorm.DB, filter ClinicFilter) ([]entity.Clinic, error)
	Update(db *gorm.DB, clinic *entity.Clinic) error
	Delete(db *gorm.DB, id int64) (int64, error)
}

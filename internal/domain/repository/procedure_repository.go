package repository

import (
	"kbeauty-insider/internal/domain/entity"

	"gorm.io/gorm"
)

type ProcedureRepository interface {
	Create(db *gorm.DB, procedure *entity.Procedure) error
	CreateBatch(db *gorm.DB, procedures []entity.Procedure) error
	FindByID(db *gorm.DB, id int64) (*entity.Procedure, error)
	FindAllByRank(db *gorm.DB) ([]entity.Procedure, error)
	Update(db *gorm.DB, procedure *entity.Procedure) error
	Delete(db *gorm.DB, id int64) (int64, error)
}

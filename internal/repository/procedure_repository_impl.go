package repository

import (
	"errors"

	"kbeauty-insider/internal/domain/entity"
	domainRepo "kbeauty-insider/internal/domain/repository"

	"gorm.io/gorm"
)

type procedureRepository struct{}

func NewProcedureRepository() domainRepo.ProcedureRepository {
	return &procedureRepository{}
}

func (r *procedureRepository) Create(db *gorm.DB, procedure *entity.Procedure) error {
	return db.Create(procedure).Error
}

func (r *procedureRepository) CreateBatch(db *gorm.DB, procedures []entity.Procedure) error {
	return db.Create(&procedures).Error
}

func (r *procedureRepository) FindByID(db *gorm.DB, id int64) (*entity.Procedure, error) {
	var procedure entity.Procedure
	err := db.Where("id = ?", id).First(&procedure).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &procedure, nil
}

func (r *procedureRepository) FindAllByRank(db *gorm.DB) ([]entity.Procedure, error) {
	var procedures []entity.Procedure
	err := db.Order("rank asc").Find(&procedures).Error
	if err != nil {
		return nil, err
	}
	return procedures, nil
}

func (r *procedureRepository) Update(db *gorm.DB, procedure *entity.Procedure) error {
	return db.Save(procedure).Error
}

func (r *procedureRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Procedure{})
	return result.RowsAffected, result.Error
}

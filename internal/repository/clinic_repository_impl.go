package repository

import (
	"errors"

	"kbeauty-insider/internal/domain/entity"
	domainRepo "kbeauty-insider/internal/domain/repository"

	"gorm.io/gorm"
)

type clinicRepository struct{}

func NewClinicRepository() domainRepo.ClinicRepository {
	return &clinicRepository{}
}

func (r *clinicRepository) Create(db *gorm.DB, clinic *entity.Clinic) error {
	return db.Create(clinic).Error
}

func (r *clinicRepository) CreateBatch(db *gorm.DB, clinics []entity.Clinic) error {
	return db.Create(&clinics).Error
}

func (r *clinicRepository) FindByID(db *gorm.DB, id int64) (*entity.Clinic, error) {
	var clinic entity.Clinic
	err := db.Where("id = ?", id).First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinic, nil
}

func (r *clinicRepository) FindAllBySortRank(db *gorm.DB, filter domainRepo.ClinicFilter) ([]entity.Clinic, error) {
	query := db.Order("sort_rank asc")
	if filter.Featured {
		query = query.Where("is_featured = ?", true)
	}
	if filter.Freepass {
		query = query.Where("is_freepass = ?", true)
	}

	var clinics []entity.Clinic
	err := query.Find(&clinics).Error
	if err != nil {
		return nil, err
	}
	return clinics, nil
}

func (r *clinicRepository) Update(db *gorm.DB, clinic *entity.Clinic) error {
	return db.Save(clinic).Error
}

func (r *clinicRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Clinic{})
	return result.RowsAffected, result.Error
}

package repository

import (
	"errors"

	"kbeauty-insider/internal/domain/entity"
	domainRepo "kbeauty-insider/internal/domain/repository"

	"gorm.io/gorm"
)

type settingRepository struct{}

func NewSettingRepository() domainRepo.SettingRepository {
	return &settingRepository{}
}

func (r *settingRepository) FindByKey(db *gorm.DB, key string) (*entity.Setting, error) {
	var setting entity.Setting
	err := db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

package repository

import (
	"kbeauty-insider/internal/domain/entity"

	"gorm.io/gorm"
)

type SettingRepository interface {
	FindByKey(db *gorm.DB, key string) (*entity.Setting, error)
}

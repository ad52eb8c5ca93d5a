package repository

import (
	"kbeauty-insider/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StampRepository interface {
	Create(db *gorm.DB, stamp *entity.Stamp) error
	FindAll(db *gorm.DB) ([]entity.Stamp, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}

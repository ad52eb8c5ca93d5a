package repository

import (
	"kbeauty-insider/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Profile, error)
}

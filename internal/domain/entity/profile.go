package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile mirrors the auth provider's user record. Rows are created by the
// identity platform on signup; this API only ever reads them.
type Profile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Role        string    `gorm:"type:varchar(50);not null;default:'user';index" json:"role"`
	DisplayName string    `gorm:"type:varchar(255)" json:"display_name,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Role constants. The role column is the single source of truth for admin
// access; there is deliberately no boolean is_admin flag.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// IsAdmin reports whether the profile grants admin access.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

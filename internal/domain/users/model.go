package users

import (
	"time"

	"workspace-portal/internal/domain/roles"
)

const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

type User struct {
	ID              uint    `gorm:"primaryKey"`
	Name            string  `gorm:"size:200"`
	Email           string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password        *string `gorm:""`
	AuthProvider    string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub       *string `gorm:"uniqueIndex:idx_users_google_sub"`
	EmailVerifiedAt *time.Time

	Roles []roles.Role `gorm:"many2many:user_roles;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPassword reports whether local-credential login is possible.
func (u User) HasPassword() bool {
	return u.Password != nil && *u.Password != ""
}

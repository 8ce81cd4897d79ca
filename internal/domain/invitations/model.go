package invitations

import (
	"time"

	"workspace-portal/internal/domain/roles"
	"workspace-portal/internal/domain/users"
)

type Invitation struct {
	ID          uint       `gorm:"primaryKey"`
	Email       string     `gorm:"not null;index"`
	Token       string     `gorm:"not null;uniqueIndex:idx_invitations_token"`
	Role        roles.Name `gorm:"size:32;not null"`
	InvitedByID uint
	InvitedBy   users.User `gorm:"foreignKey:InvitedByID"`
	ExpiresAt   time.Time
	AcceptedAt  *time.Time
	CreatedAt   time.Time
}

// Pending reports whether the invitation can still be accepted.
func (i Invitation) Pending(now time.Time) bool {
	return i.AcceptedAt == nil && now.Before(i.ExpiresAt)
}

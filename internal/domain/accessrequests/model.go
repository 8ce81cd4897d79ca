package accessrequests

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// AccessRequest is an outside user asking to join the workspace. It is
// reviewed by an admin; approval turns into an invitation.
type AccessRequest struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:200;not null"`
	Email        string `gorm:"not null;index"`
	Message      string
	Status       Status `gorm:"size:16;not null;default:'pending'"`
	ReviewedByID *uint
	ReviewedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

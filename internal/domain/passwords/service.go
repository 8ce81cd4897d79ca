// Package passwords implements the password-change flow for both
// local-credential and social-only accounts.
package passwords

import (
	"context"

	"workspace-portal/internal/domain/identity"
	"workspace-portal/internal/domain/users"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MsgPasswordSet is flashed when a social-only account gains a password.
	MsgPasswordSet = "Password set successfully! You can now use both social login and email/password login."
	// MsgPasswordUpdated is flashed on a regular password change.
	MsgPasswordUpdated = "Password updated successfully!"
)

type Input struct {
	CurrentPassword      string `json:"current_password"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// FieldErrors maps input field names to user-correctable messages.
type FieldErrors map[string]string

// UserStore persists the new hash. The write is the only side effect of
// a successful update.
type UserStore interface {
	SavePasswordHash(ctx context.Context, userID uint, hash string) error
}

type Service struct {
	users  UserStore
	policy Policy
}

func NewService(users UserStore, policy Policy) *Service {
	return &Service{users: users, policy: policy}
}

// Update validates and applies a password change for u. Social-only
// accounts set their first password without a current-password check;
// everyone else must prove the current one. Returns the flash message on
// success, field errors on validation failure. Nothing is persisted
// unless every rule passes.
func (s *Service) Update(ctx context.Context, u users.User, in Input) (string, FieldErrors, error) {
	errs := FieldErrors{}
	pureSocial := identity.IsPureSocial(u)

	if !pureSocial {
		switch {
		case in.CurrentPassword == "":
			errs["current_password"] = "The current password field is required."
		case !u.HasPassword(),
			bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte(in.CurrentPassword)) != nil:
			errs["current_password"] = "The current password is incorrect."
		}
	}

	if in.Password == "" {
		errs["password"] = "The password field is required."
	} else if msg := s.policy.Check(in.Password); msg != "" {
		errs["password"] = msg
	}
	if in.Password != in.PasswordConfirmation {
		errs["password_confirmation"] = "The password confirmation does not match."
	}

	if len(errs) > 0 {
		return "", errs, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}
	if err := s.users.SavePasswordHash(ctx, u.ID, string(hash)); err != nil {
		return "", nil, err
	}

	if pureSocial {
		return MsgPasswordSet, nil, nil
	}
	return MsgPasswordUpdated, nil, nil
}

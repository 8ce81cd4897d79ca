// Package identity classifies how an account can authenticate.
package identity

import "workspace-portal/internal/domain/users"

// IsPureSocial reports whether the user's only sign-in method is a
// third-party provider: no local password and a non-local provider.
// The state is one-way — setting a password makes the account dual-mode,
// it never becomes pure-social again.
func IsPureSocial(u users.User) bool {
	return !u.HasPassword() && SocialProvider(u) != ""
}

// SocialProvider returns the third-party provider name verbatim, or ""
// for local-only accounts.
func SocialProvider(u users.User) string {
	if u.AuthProvider == "" || u.AuthProvider == users.ProviderLocal {
		return ""
	}
	return u.AuthProvider
}

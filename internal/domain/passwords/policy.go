package passwords

import "fmt"

// Policy is the minimum-strength rule set applied to new passwords.
type Policy struct {
	MinLength     int
	RequireLetter bool
	RequireDigit  bool
}

// DefaultPolicy mirrors the registration rules: at least 8 characters
// with both letters and digits.
func DefaultPolicy() Policy {
	return Policy{MinLength: 8, RequireLetter: true, RequireDigit: true}
}

// Check returns a human-readable rule violation, or "" when the
// password satisfies the policy.
func (p Policy) Check(password string) string {
	if len(password) < p.MinLength {
		return fmt.Sprintf("The password must be at least %d characters long.", p.MinLength)
	}
	hasLetter := false
	hasDigit := false
	for _, c := range password {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			hasLetter = true
		case '0' <= c && c <= '9':
			hasDigit = true
		}
	}
	if p.RequireLetter && !hasLetter {
		return "The password must contain at least one letter."
	}
	if p.RequireDigit && !hasDigit {
		return "The password must contain at least one number."
	}
	return ""
}

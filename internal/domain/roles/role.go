package roles

import "time"

// Name identifies a capability role. Membership is flat: holding "owner"
// does not imply "admin".
type Name string

const (
	Owner  Name = "owner"
	Admin  Name = "admin"
	Editor Name = "editor"
)

type Role struct {
	ID        uint `gorm:"primaryKey"`
	Name      Name `gorm:"size:32;not null;uniqueIndex:idx_roles_name"`
	CreatedAt time.Time
}

// Set is the collection of role names attached to one user.
type Set map[Name]struct{}

func NewSet(names ...Name) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s Set) Has(n Name) bool {
	_, ok := s[n]
	return ok
}

func (s Set) Names() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, string(n))
	}
	return out
}

// Package authz holds the static route-admission table: which URL
// prefixes demand which role before the handler runs.
package authz

import (
	"strings"

	"workspace-portal/internal/domain/roles"
)

type Rule struct {
	Prefix string
	Role   roles.Name
	// Exact limits the rule to the prefix itself, so "/settings" can be
	// admin-only while "/settings/password" stays open to any session.
	Exact bool
}

var Table = []Rule{
	{Prefix: "/users", Role: roles.Admin},
	{Prefix: "/invitations", Role: roles.Admin},
	{Prefix: "/access-requests", Role: roles.Admin},
	{Prefix: "/settings", Role: roles.Admin, Exact: true},
	{Prefix: "/settings/maintenance", Role: roles.Admin},
	{Prefix: "/admin/create", Role: roles.Admin},
}

// Required returns the role a request path must hold, if any.
// Matching is by path segment: "/users/7" matches "/users",
// "/username" does not.
func Required(path string) (roles.Name, bool) {
	for _, r := range Table {
		if r.Exact {
			if path == r.Prefix {
				return r.Role, true
			}
			continue
		}
		if path == r.Prefix || strings.HasPrefix(path, r.Prefix+"/") {
			return r.Role, true
		}
	}
	return "", false
}

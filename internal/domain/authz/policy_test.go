package authz

import (
	"testing"

	"workspace-portal/internal/domain/roles"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		path  string
		role  roles.Name
		gated bool
	}{
		{"/users", roles.Admin, true},
		{"/users/7", roles.Admin, true},
		{"/users/7/roles", roles.Admin, true},
		{"/username", "", false},
		{"/invitations", roles.Admin, true},
		{"/invitations/3", roles.Admin, true},
		{"/access-requests", roles.Admin, true},
		{"/access-requests/5/approve", roles.Admin, true},
		{"/admin/create", roles.Admin, true},
		{"/settings", roles.Admin, true},
		{"/settings/maintenance", roles.Admin, true},
		// settings sub-pages belong to the signed-in user, not admins
		{"/settings/password", "", false},
		{"/settings/profile", "", false},
		{"/dashboard", "", false},
		{"/", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			role, gated := Required(tt.path)
			assert.Equal(t, tt.gated, gated)
			assert.Equal(t, tt.role, role)
		})
	}
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"workspace-portal/internal/domain/roles"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSettings struct {
	enabled bool
	message string
	readErr error
}

func (f *fakeSettings) IsMaintenanceMode(ctx context.Context) (bool, error) {
	return f.enabled, f.readErr
}

func (f *fakeSettings) MaintenanceMessage(ctx context.Context) (string, error) {
	return f.message, nil
}

func (f *fakeSettings) SetMaintenance(ctx context.Context, enabled bool, message string) error {
	f.enabled = enabled
	f.message = message
	return nil
}

type fakeRoles struct {
	grants map[uint][]roles.Name
	err    error
}

func (f *fakeRoles) HasRole(ctx context.Context, userID uint, name roles.Name) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, n := range f.grants[userID] {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoles) RolesOf(ctx context.Context, userID uint) (roles.Set, error) {
	return roles.NewSet(f.grants[userID]...), nil
}

func (f *fakeRoles) Grant(ctx context.Context, userID uint, name roles.Name) error {
	f.grants[userID] = append(f.grants[userID], name)
	return nil
}

// asUser stands in for Identify in tests.
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id != 0 {
			c.Set("user_id", id)
		}
		c.Next()
	}
}

func gatedRouter(userID uint, settingsStore *fakeSettings, roleStore *fakeRoles) *gin.Engine {
	r := gin.New()
	r.Use(asUser(userID))
	r.Use(NewMaintenanceGate(settingsStore, roleStore).Handler())
	r.GET("/dashboard", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/login", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestMaintenanceGateDisabledPassesEveryone(t *testing.T) {
	settingsStore := &fakeSettings{enabled: false}
	roleStore := &fakeRoles{grants: map[uint][]roles.Name{}}

	// anonymous
	w := get(gatedRouter(0, settingsStore, roleStore), "/dashboard")
	assert.Equal(t, http.StatusOK, w.Code)

	// regular user
	w = get(gatedRouter(5, settingsStore, roleStore), "/dashboard")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMaintenanceGateBlocksNonOwners(t *testing.T) {
	settingsStore := &fakeSettings{enabled: true, message: "Back at noon."}
	roleStore := &fakeRoles{grants: map[uint][]roles.Name{
		5: {roles.Editor, roles.Admin},
	}}

	for _, path := range []string{"/dashboard", "/login"} {
		w := get(gatedRouter(5, settingsStore, roleStore), path)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"maintenance"`)
		assert.Contains(t, w.Body.String(), "Back at noon.")
	}

	// anonymous requests are blocked too
	w := get(gatedRouter(0, settingsStore, roleStore), "/dashboard")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMaintenanceGateOwnerBypass(t *testing.T) {
	settingsStore := &fakeSettings{enabled: true, message: "Back at noon."}
	roleStore := &fakeRoles{grants: map[uint][]roles.Name{
		1: {roles.Owner},
	}}

	w := get(gatedRouter(1, settingsStore, roleStore), "/dashboard")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMaintenanceGateFailsOpenOnSettingsError(t *testing.T) {
	settingsStore := &fakeSettings{enabled: true, readErr: errors.New("settings table unreachable")}
	roleStore := &fakeRoles{grants: map[uint][]roles.Name{}}

	w := get(gatedRouter(0, settingsStore, roleStore), "/dashboard")
	assert.Equal(t, http.StatusOK, w.Code)
}

func admissionRouter(userID uint, roleStore *fakeRoles) *gin.Engine {
	r := gin.New()
	r.Use(asUser(userID))
	r.Use(Admission(roleStore))
	ok := func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) }
	auth := r.Group("/")
	auth.Use(RequireAuth())
	auth.GET("/users", ok)
	auth.GET("/dashboard", ok)
	return r
}

func TestAdmissionUnauthenticatedGatedPath(t *testing.T) {
	roleStore := &fakeRoles{grants: map[uint][]roles.Name{}}
	r := admissionRouter(0, roleStore)

	w := get(r, "/users")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// browser navigation is redirected to the login flow instead
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Accept", "text/html")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAdmissionForbidsNonAdmins(t *testing.T) {
	roleStore := &fakeRoles{grants: map[uint][]roles.Name{
		5: {roles.Editor},
	}}
	w := get(admissionRouter(5, roleStore), "/users")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Access denied")
}

func TestAdmissionPassesAdmins(t *testing.T) {
	roleStore := &fakeRoles{grants: map[uint][]roles.Name{
		5: {roles.Admin},
	}}
	w := get(admissionRouter(5, roleStore), "/users")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdmissionOwnerIsNotAdmin(t *testing.T) {
	// flat membership: owner does not imply admin
	roleStore := &fakeRoles{grants: map[uint][]roles.Name{
		1: {roles.Owner},
	}}
	w := get(admissionRouter(1, roleStore), "/users")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdmissionIgnoresUngatedPaths(t *testing.T) {
	roleStore := &fakeRoles{grants: map[uint][]roles.Name{
		5: {roles.Editor},
	}}
	w := get(admissionRouter(5, roleStore), "/dashboard")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdmissionRoleStoreError(t *testing.T) {
	roleStore := &fakeRoles{grants: map[uint][]roles.Name{}, err: errors.New("db down")}
	w := get(admissionRouter(5, roleStore), "/users")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireAuthBlocksAnonymous(t *testing.T) {
	roleStore := &fakeRoles{grants: map[uint][]roles.Name{}}
	w := get(admissionRouter(0, roleStore), "/dashboard")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Package adminusers is the admin-only user management surface.
package adminusers

import (
	"net/http"
	"time"

	"workspace-portal/internal/domain/passwords"
	"workspace-portal/internal/domain/roles"
	"workspace-portal/internal/domain/users"
	"workspace-portal/internal/render"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Handler struct {
	DB     *gorm.DB
	Roles  roles.Store
	Policy passwords.Policy
}

func NewHandler(db *gorm.DB, roleStore roles.Store) *Handler {
	return &Handler{DB: db, Roles: roleStore, Policy: passwords.DefaultPolicy()}
}

type userRow struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	AuthProvider  string   `json:"auth_provider"`
	EmailVerified bool     `json:"email_verified"`
	Roles         []string `json:"roles"`
	CreatedAt     string   `json:"created_at"`
}

// GET /users
func (h *Handler) List(c *gin.Context) {
	var all []users.User
	if err := h.DB.Preload("Roles").Order("id").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	rows := make([]userRow, 0, len(all))
	for _, u := range all {
		rows = append(rows, toRow(u))
	}
	render.Page(c, "users/index", gin.H{"users": rows})
}

// GET /users/:id
func (h *Handler) Detail(c *gin.Context) {
	var user users.User
	if err := h.DB.Preload("Roles").First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	render.Page(c, "users/show", gin.H{"user": toRow(user)})
}

// GET /admin/create
func (h *Handler) CreateForm(c *gin.Context) {
	render.Page(c, "admin/create", gin.H{
		"assignable_roles": []roles.Name{roles.Admin, roles.Editor},
	})
}

// POST /admin/create
func (h *Handler) Create(c *gin.Context) {
	var input struct {
		Name     string   `json:"name" binding:"required"`
		Email    string   `json:"email" binding:"required,email"`
		Password string   `json:"password" binding:"required"`
		Roles    []string `json:"roles"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		render.ValidationFailed(c, render.BindingErrors(err))
		return
	}
	if msg := h.Policy.Check(input.Password); msg != "" {
		render.ValidationFailed(c, map[string]string{"password": msg})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	hashed := string(hashedPassword)
	now := time.Now()

	user := users.User{
		Name:            input.Name,
		Email:           input.Email,
		Password:        &hashed,
		AuthProvider:    users.ProviderLocal,
		EmailVerifiedAt: &now,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email may already exist"})
		return
	}

	granted := input.Roles
	if len(granted) == 0 {
		granted = []string{string(roles.Editor)}
	}
	for _, r := range granted {
		if err := h.Roles.Grant(c.Request.Context(), user.ID, roles.Name(r)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign role"})
			return
		}
	}

	render.Redirect(c, "/users", "User created successfully!")
}

// POST /users/:id/roles
func (h *Handler) GrantRole(c *gin.Context) {
	var input struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		render.ValidationFailed(c, render.BindingErrors(err))
		return
	}

	var user users.User
	if err := h.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := h.Roles.Grant(c.Request.Context(), user.ID, roles.Name(input.Role)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role granted"})
}

func toRow(u users.User) userRow {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, string(r.Name))
	}
	return userRow{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		AuthProvider:  u.AuthProvider,
		EmailVerified: u.EmailVerifiedAt != nil,
		Roles:         names,
		CreatedAt:     u.CreatedAt.Format("2006-01-02 15:04"),
	}
}

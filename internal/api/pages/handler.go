// Package pages serves the render-only authenticated screens.
package pages

import (
	"net/http"

	"workspace-portal/internal/app/http/middleware"
	"workspace-portal/internal/domain/identity"
	"workspace-portal/internal/domain/roles"
	"workspace-portal/internal/domain/users"
	"workspace-portal/internal/render"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB    *gorm.DB
	Roles roles.Store
}

func NewHandler(db *gorm.DB, roleStore roles.Store) *Handler {
	return &Handler{DB: db, Roles: roleStore}
}

func (h *Handler) Home(c *gin.Context) {
	h.renderPage(c, "home")
}

func (h *Handler) Dashboard(c *gin.Context) {
	h.renderPage(c, "dashboard")
}

func (h *Handler) Analytics(c *gin.Context) {
	h.renderPage(c, "analytics")
}

func (h *Handler) Activity(c *gin.Context) {
	h.renderPage(c, "activity")
}

func (h *Handler) Profile(c *gin.Context) {
	h.renderPage(c, "settings/profile")
}

// Security additionally shows how the account can sign in.
func (h *Handler) Security(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	props := gin.H{
		"user":           h.userProps(c, user),
		"has_password":   user.HasPassword(),
		"email_verified": user.EmailVerifiedAt != nil,
	}
	if provider := identity.SocialProvider(user); provider != "" {
		props["social_provider"] = provider
	}
	render.Page(c, "security", props)
}

// GET /me — the raw account payload the SPA bootstraps from.
func (h *Handler) CurrentUser(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.userProps(c, user))
}

func (h *Handler) renderPage(c *gin.Context, component string) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	render.Page(c, component, gin.H{"user": h.userProps(c, user)})
}

func (h *Handler) currentUser(c *gin.Context) (users.User, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return users.User{}, false
	}
	var user users.User
	if err := h.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return users.User{}, false
	}
	return user, true
}

func (h *Handler) userProps(c *gin.Context, user users.User) gin.H {
	set, err := h.Roles.RolesOf(c.Request.Context(), user.ID)
	if err != nil {
		set = roles.Set{}
	}
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"roles": set.Names(),
	}
}

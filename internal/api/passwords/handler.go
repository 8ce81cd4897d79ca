package passwords

import (
	"errors"
	"io"
	"net/http"

	"workspace-portal/internal/app/http/middleware"
	"workspace-portal/internal/domain/identity"
	"workspace-portal/internal/domain/passwords"
	"workspace-portal/internal/domain/users"
	"workspace-portal/internal/render"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB      *gorm.DB
	Service *passwords.Service
}

func NewHandler(db *gorm.DB, service *passwords.Service) *Handler {
	return &Handler{DB: db, Service: service}
}

// GET /settings/password
func (h *Handler) Show(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	props := gin.H{
		"has_password": user.HasPassword(),
	}
	if provider := identity.SocialProvider(user); provider != "" {
		props["social_provider"] = provider
	}
	render.Page(c, "settings/password", props)
}

// PUT|PATCH /settings/password
func (h *Handler) Update(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var input passwords.Input
	// Missing fields are reported per-field by the service, so an empty
	// body is not a binding error here.
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	flash, fieldErrs, err := h.Service.Update(c.Request.Context(), user, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}
	if len(fieldErrs) > 0 {
		render.ValidationFailed(c, fieldErrs)
		return
	}

	render.Redirect(c, "/settings/password", flash)
}

func (h *Handler) currentUser(c *gin.Context) (users.User, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return users.User{}, false
	}
	var user users.User
	if err := h.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return users.User{}, false
	}
	return user, true
}

package invitations

import (
	"log"
	"net/http"
	"time"

	"workspace-portal/internal/app/http/middleware"
	"workspace-portal/internal/domain/invitations"
	"workspace-portal/internal/domain/passwords"
	"workspace-portal/internal/domain/roles"
	"workspace-portal/internal/domain/users"
	"workspace-portal/internal/render"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const inviteValidity = 7 * 24 * time.Hour

type Mailer interface {
	SendInvitation(to string, token string) error
}

type Handler struct {
	DB     *gorm.DB
	Roles  roles.Store
	Mailer Mailer
	Policy passwords.Policy
}

func NewHandler(db *gorm.DB, roleStore roles.Store, mailer Mailer) *Handler {
	return &Handler{DB: db, Roles: roleStore, Mailer: mailer, Policy: passwords.DefaultPolicy()}
}

type inviteRow struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Accepted  bool   `json:"accepted"`
	ExpiresAt string `json:"expires_at"`
	CreatedAt string `json:"created_at"`
}

// GET /invitations
func (h *Handler) List(c *gin.Context) {
	var all []invitations.Invitation
	if err := h.DB.Order("created_at DESC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invitations"})
		return
	}

	rows := make([]inviteRow, 0, len(all))
	for _, inv := range all {
		rows = append(rows, inviteRow{
			ID:        inv.ID,
			Email:     inv.Email,
			Role:      string(inv.Role),
			Accepted:  inv.AcceptedAt != nil,
			ExpiresAt: inv.ExpiresAt.Format(time.RFC3339),
			CreatedAt: inv.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	render.Page(c, "invitations/index", gin.H{"invitations": rows})
}

// POST /invitations
func (h *Handler) Create(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
		Role  string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		render.ValidationFailed(c, render.BindingErrors(err))
		return
	}

	role := roles.Name(input.Role)
	if role == "" {
		role = roles.Editor
	}

	inviterID, _ := middleware.CurrentUserID(c)
	inv := invitations.Invitation{
		Email:       input.Email,
		Token:       uuid.NewString(),
		Role:        role,
		InvitedByID: inviterID,
		ExpiresAt:   time.Now().Add(inviteValidity),
	}
	if err := h.DB.Create(&inv).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invitation"})
		return
	}

	if err := h.Mailer.SendInvitation(inv.Email, inv.Token); err != nil {
		// Keep the invitation; the link can be re-sent or copied manually.
		log.Println("failed to send invitation email:", err)
	}

	render.Redirect(c, "/invitations", "Invitation sent to "+inv.Email+".")
}

// DELETE /invitations/:id
func (h *Handler) Revoke(c *gin.Context) {
	result := h.DB.Where("id = ? AND accepted_at IS NULL", c.Param("id")).Delete(&invitations.Invitation{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke invitation"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invitation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invitation revoked"})
}

// GET /invite/:token — public landing page for an invitation link.
func (h *Handler) Show(c *gin.Context) {
	var inv invitations.Invitation
	if err := h.DB.Where("token = ?", c.Param("token")).First(&inv).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invitation not found"})
		return
	}
	render.Page(c, "invitations/accept", gin.H{
		"email":   inv.Email,
		"role":    string(inv.Role),
		"expired": !inv.Pending(time.Now()),
	})
}

// POST /invite/:token/accept — public: creates the invited account.
func (h *Handler) Accept(c *gin.Context) {
	var input struct {
		Name                 string `json:"name" binding:"required"`
		Password             string `json:"password" binding:"required"`
		PasswordConfirmation string `json:"password_confirmation" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		render.ValidationFailed(c, render.BindingErrors(err))
		return
	}
	if msg := h.Policy.Check(input.Password); msg != "" {
		render.ValidationFailed(c, map[string]string{"password": msg})
		return
	}
	if input.Password != input.PasswordConfirmation {
		render.ValidationFailed(c, map[string]string{"password_confirmation": "The password confirmation does not match."})
		return
	}

	var inv invitations.Invitation
	if err := h.DB.Where("token = ?", c.Param("token")).First(&inv).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invitation not found"})
		return
	}
	now := time.Now()
	if !inv.Pending(now) {
		c.JSON(http.StatusGone, gin.H{"error": "Invitation has expired or was already used"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	hashed := string(hashedPassword)

	user := users.User{
		Name:            input.Name,
		Email:           inv.Email,
		Password:        &hashed,
		AuthProvider:    users.ProviderLocal,
		EmailVerifiedAt: &now,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	}
	if err := h.Roles.Grant(c.Request.Context(), user.ID, inv.Role); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign role"})
		return
	}
	if err := h.DB.Model(&inv).Update("accepted_at", &now).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept invitation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account created. You can now log in."})
}

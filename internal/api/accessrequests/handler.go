package accessrequests

import (
	"log"
	"net/http"
	"time"

	"workspace-portal/internal/app/http/middleware"
	"workspace-portal/internal/domain/accessrequests"
	"workspace-portal/internal/domain/invitations"
	"workspace-portal/internal/domain/roles"
	"workspace-portal/internal/render"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Mailer interface {
	SendInvitation(to string, token string) error
}

type Handler struct {
	DB     *gorm.DB
	Mailer Mailer
}

func NewHandler(db *gorm.DB, mailer Mailer) *Handler {
	return &Handler{DB: db, Mailer: mailer}
}

// POST /request-access — public: an outsider asks to join.
func (h *Handler) Submit(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		render.ValidationFailed(c, render.BindingErrors(err))
		return
	}

	req := accessrequests.AccessRequest{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
		Status:  accessrequests.StatusPending,
	}
	if err := h.DB.Create(&req).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Your access request has been received."})
}

// GET /access-requests
func (h *Handler) List(c *gin.Context) {
	var all []accessrequests.AccessRequest
	if err := h.DB.Order("created_at DESC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load access requests"})
		return
	}
	render.Page(c, "access-requests/index", gin.H{"requests": toRows(all)})
}

// GET /access-requests/:id
func (h *Handler) Show(c *gin.Context) {
	var req accessrequests.AccessRequest
	if err := h.DB.First(&req, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Access request not found"})
		return
	}
	render.Page(c, "access-requests/show", gin.H{"request": toRow(req)})
}

// PATCH /access-requests/:id/approve — approval mints an invitation for
// the requester.
func (h *Handler) Approve(c *gin.Context) {
	req, ok := h.pendingRequest(c)
	if !ok {
		return
	}

	inviterID, _ := middleware.CurrentUserID(c)
	inv := invitations.Invitation{
		Email:       req.Email,
		Token:       uuid.NewString(),
		Role:        roles.Editor,
		InvitedByID: inviterID,
		ExpiresAt:   time.Now().Add(7 * 24 * time.Hour),
	}
	if err := h.DB.Create(&inv).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invitation"})
		return
	}

	if err := h.review(c, req, accessrequests.StatusApproved); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
		return
	}

	if err := h.Mailer.SendInvitation(inv.Email, inv.Token); err != nil {
		log.Println("failed to send invitation email:", err)
	}

	render.Redirect(c, "/access-requests", "Access request approved and invitation sent.")
}

// PATCH /access-requests/:id/reject
func (h *Handler) Reject(c *gin.Context) {
	req, ok := h.pendingRequest(c)
	if !ok {
		return
	}
	if err := h.review(c, req, accessrequests.StatusRejected); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
		return
	}
	render.Redirect(c, "/access-requests", "Access request rejected.")
}

func (h *Handler) pendingRequest(c *gin.Context) (accessrequests.AccessRequest, bool) {
	var req accessrequests.AccessRequest
	if err := h.DB.First(&req, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Access request not found"})
		return req, false
	}
	if req.Status != accessrequests.StatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Access request was already reviewed"})
		return req, false
	}
	return req, true
}

func (h *Handler) review(c *gin.Context, req accessrequests.AccessRequest, status accessrequests.Status) error {
	now := time.Now()
	reviewerID, _ := middleware.CurrentUserID(c)
	return h.DB.Model(&req).Updates(map[string]interface{}{
		"status":         status,
		"reviewed_by_id": reviewerID,
		"reviewed_at":    &now,
	}).Error
}

type row struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func toRow(r accessrequests.AccessRequest) row {
	return row{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Message:   r.Message,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format("2006-01-02 15:04"),
	}
}

func toRows(all []accessrequests.AccessRequest) []row {
	rows := make([]row, 0, len(all))
	for _, r := range all {
		rows = append(rows, toRow(r))
	}
	return rows
}

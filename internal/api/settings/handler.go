package settings

import (
	"net/http"

	"workspace-portal/internal/domain/settings"
	"workspace-portal/internal/render"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Settings settings.Store
}

func NewHandler(store settings.Store) *Handler {
	return &Handler{Settings: store}
}

// GET /settings
func (h *Handler) Show(c *gin.Context) {
	ctx := c.Request.Context()

	enabled, err := h.Settings.IsMaintenanceMode(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	message, err := h.Settings.MaintenanceMessage(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	render.Page(c, "settings/general", gin.H{
		"maintenance": gin.H{
			"enabled": enabled,
			"message": message,
		},
	})
}

// PUT /settings/maintenance — the out-of-band write behind the gate.
func (h *Handler) UpdateMaintenance(c *gin.Context) {
	var input struct {
		Enabled bool   `json:"enabled"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if input.Message == "" {
		input.Message = settings.DefaultMaintenanceMessage
	}

	if err := h.Settings.SetMaintenance(c.Request.Context(), input.Enabled, input.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	render.Redirect(c, "/settings", "Settings saved.")
}

package middleware

import (
	"log"
	"net/http"

	"workspace-portal/internal/domain/roles"
	"workspace-portal/internal/domain/settings"
	"workspace-portal/internal/render"

	"github.com/gin-gonic/gin"
)

// MaintenanceGate short-circuits every request while maintenance mode is
// on, except for users holding the owner role. Both stores are injected
// so the gate can be exercised without a database.
type MaintenanceGate struct {
	Settings settings.Store
	Roles    roles.Store
}

func NewMaintenanceGate(settingsStore settings.Store, roleStore roles.Store) *MaintenanceGate {
	return &MaintenanceGate{Settings: settingsStore, Roles: roleStore}
}

func (g *MaintenanceGate) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		enabled, err := g.Settings.IsMaintenanceMode(ctx)
		if err != nil {
			// Fail open: a settings outage must not take every route down.
			log.Printf("maintenance gate: settings read failed, serving normally: %v", err)
			c.Next()
			return
		}
		if !enabled {
			c.Next()
			return
		}

		if userID, ok := CurrentUserID(c); ok {
			isOwner, err := g.Roles.HasRole(ctx, userID, roles.Owner)
			if err == nil && isOwner {
				c.Next()
				return
			}
		}

		message, err := g.Settings.MaintenanceMessage(ctx)
		if err != nil || message == "" {
			message = settings.DefaultMaintenanceMessage
		}
		c.AbortWithStatusJSON(http.StatusServiceUnavailable,
			render.Component("maintenance", gin.H{"message": message}))
	}
}

package routes

import (
	"workspace-portal/config"
	accessrequestsapi "workspace-portal/internal/api/accessrequests"
	"workspace-portal/internal/api/adminusers"
	authapi "workspace-portal/internal/api/auth"
	invitationsapi "workspace-portal/internal/api/invitations"
	pagesapi "workspace-portal/internal/api/pages"
	passwordsapi "workspace-portal/internal/api/passwords"
	settingsapi "workspace-portal/internal/api/settings"
	"workspace-portal/internal/app/http/middleware"
	"workspace-portal/internal/domain/passwords"
	"workspace-portal/internal/domain/roles"
	"workspace-portal/internal/domain/settings"
	"workspace-portal/internal/domain/users"
	"workspace-portal/internal/mail"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Deps struct {
	DB       *gorm.DB
	Settings settings.Store
	Roles    roles.Store
	Mailer   *mail.Mailer
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	authH := authapi.NewHandler(deps.DB, deps.Roles)
	pagesH := pagesapi.NewHandler(deps.DB, deps.Roles)
	passwordsH := passwordsapi.NewHandler(deps.DB,
		passwords.NewService(users.NewGormStore(deps.DB), passwords.DefaultPolicy()))
	usersH := adminusers.NewHandler(deps.DB, deps.Roles)
	invitationsH := invitationsapi.NewHandler(deps.DB, deps.Roles, deps.Mailer)
	requestsH := accessrequestsapi.NewHandler(deps.DB, deps.Mailer)
	settingsH := settingsapi.NewHandler(deps.Settings)

	// Health stays reachable during maintenance.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Every request below runs through: identify -> maintenance gate ->
	// route admission table. Groups add session enforcement on top.
	gate := middleware.NewMaintenanceGate(deps.Settings, deps.Roles)
	r.Use(middleware.Identify(config.JWT_SECRET))
	r.Use(gate.Handler())
	r.Use(middleware.Admission(deps.Roles))

	r.GET("/auth/google", authH.GoogleStart)
	r.GET("/auth/google/callback", authH.GoogleCallback)

	public := r.Group("/")
	public.Use(middleware.SanitizeInput())
	public.POST("/register", authH.Register)
	public.POST("/login", authH.Login)
	public.POST("/logout", authH.Logout)
	public.POST("/request-access", requestsH.Submit)
	public.GET("/invite/:token", invitationsH.Show)
	public.POST("/invite/:token/accept", invitationsH.Accept)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())
	auth.GET("/", pagesH.Home)
	auth.GET("/dashboard", pagesH.Dashboard)
	auth.GET("/security", pagesH.Security)
	auth.GET("/analytics", pagesH.Analytics)
	auth.GET("/activity", pagesH.Activity)
	auth.GET("/me", pagesH.CurrentUser)
	auth.GET("/settings/profile", pagesH.Profile)
	auth.GET("/settings/password", passwordsH.Show)
	auth.PUT("/settings/password", passwordsH.Update)
	auth.PATCH("/settings/password", passwordsH.Update)

	// Admin-gated prefixes; the required role comes from the admission
	// table, these routes only add session enforcement.
	admin := r.Group("/")
	admin.Use(middleware.RequireAuth())
	admin.GET("/users", usersH.List)
	admin.GET("/users/:id", usersH.Detail)
	admin.POST("/users/:id/roles", usersH.GrantRole)
	admin.GET("/admin/create", usersH.CreateForm)
	admin.POST("/admin/create", usersH.Create)
	admin.GET("/invitations", invitationsH.List)
	admin.POST("/invitations", invitationsH.Create)
	admin.DELETE("/invitations/:id", invitationsH.Revoke)
	admin.GET("/access-requests", requestsH.List)
	admin.GET("/access-requests/:id", requestsH.Show)
	admin.PATCH("/access-requests/:id/approve", requestsH.Approve)
	admin.PATCH("/access-requests/:id/reject", requestsH.Reject)
	admin.GET("/settings", settingsH.Show)
	admin.PUT("/settings/maintenance", settingsH.UpdateMaintenance)
}

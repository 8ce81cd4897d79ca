package main

import (
	"time"

	"workspace-portal/config"
	"workspace-portal/database"
	routes "workspace-portal/internal/app/http"
	"workspace-portal/internal/domain/roles"
	"workspace-portal/internal/domain/settings"
	"workspace-portal/internal/mail"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	db := database.InitDB(config.DB_URL)
	database.Seed(db, config.OWNER_EMAIL, config.OWNER_PASSWORD)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Settings: settings.NewGormStore(db),
		Roles:    roles.NewGormStore(db),
		Mailer:   mail.NewMailer(),
	})

	r.Run(":" + config.PORT)
}

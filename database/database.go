package database

import (
	"log"

	"workspace-portal/internal/domain/accessrequests"
	"workspace-portal/internal/domain/invitations"
	"workspace-portal/internal/domain/roles"
	"workspace-portal/internal/domain/settings"
	"workspace-portal/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(dsn string) *gorm.DB {
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&users.User{},
		&roles.Role{},
		&settings.Setting{},
		&invitations.Invitation{},
		&accessrequests.AccessRequest{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	log.Println("Connected and migrated successfully")
	return db
}

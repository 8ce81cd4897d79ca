package database

import (
	"context"
	"log"
	"time"

	"workspace-portal/internal/domain/roles"
	"workspace-portal/internal/domain/users"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed makes sure the role table exists and, when OWNER_EMAIL is
// configured, that a first owner account can log in. The owner also
// carries admin because role membership is flat.
func Seed(db *gorm.DB, ownerEmail, ownerPassword string) {
	for _, name := range []roles.Name{roles.Owner, roles.Admin, roles.Editor} {
		var role roles.Role
		if err := db.Where(roles.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
			log.Fatal("Failed to seed roles:", err)
		}
	}

	if ownerEmail == "" || ownerPassword == "" {
		return
	}

	var owner users.User
	err := db.Where("email = ?", ownerEmail).First(&owner).Error
	if err == gorm.ErrRecordNotFound {
		hashedPassword, herr := bcrypt.GenerateFromPassword([]byte(ownerPassword), bcrypt.DefaultCost)
		if herr != nil {
			log.Fatal("Failed to hash owner password:", herr)
		}
		hashed := string(hashedPassword)
		now := time.Now()
		owner = users.User{
			Name:            "Owner",
			Email:           ownerEmail,
			Password:        &hashed,
			AuthProvider:    users.ProviderLocal,
			EmailVerifiedAt: &now,
		}
		if err := db.Create(&owner).Error; err != nil {
			log.Fatal("Failed to seed owner account:", err)
		}
	} else if err != nil {
		log.Fatal("Failed to look up owner account:", err)
	}

	store := roles.NewGormStore(db)
	ctx := context.Background()
	for _, name := range []roles.Name{roles.Owner, roles.Admin} {
		if err := store.Grant(ctx, owner.ID, name); err != nil {
			log.Fatal("Failed to grant owner roles:", err)
		}
	}
}

package users

import (
	"context"

	"gorm.io/gorm"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) SavePasswordHash(ctx context.Context, userID uint, hash string) error {
	return s.DB.WithContext(ctx).Model(&User{}).Where("id = ?", userID).Update("password", hash).Error
}

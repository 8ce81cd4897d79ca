package roles

import (
	"context"

	"gorm.io/gorm"
)

// Store answers role-membership questions for the request pipeline.
type Store interface {
	HasRole(ctx context.Context, userID uint, name Name) (bool, error)
	RolesOf(ctx context.Context, userID uint) (Set, error)
	Grant(ctx context.Context, userID uint, name Name) error
}

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) HasRole(ctx context.Context, userID uint, name Name) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Table("user_roles ur").
		Joins("JOIN roles r ON r.id = ur.role_id").
		Where("ur.user_id = ? AND r.name = ?", userID, name).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) RolesOf(ctx context.Context, userID uint) (Set, error) {
	var names []Name
	err := s.DB.WithContext(ctx).
		Table("user_roles ur").
		Joins("JOIN roles r ON r.id = ur.role_id").
		Where("ur.user_id = ?", userID).
		Pluck("r.name", &names).Error
	if err != nil {
		return nil, err
	}
	return NewSet(names...), nil
}

func (s *GormStore) Grant(ctx context.Context, userID uint, name Name) error {
	var role Role
	if err := s.DB.WithContext(ctx).Where(Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Exec(
		"INSERT INTO user_roles (user_id, role_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		userID, role.ID,
	).Error
}

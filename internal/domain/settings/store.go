package settings

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"
)

// Store reads and writes global configuration. Reads happen on every
// request; writes are rare administrative actions.
type Store interface {
	IsMaintenanceMode(ctx context.Context) (bool, error)
	MaintenanceMessage(ctx context.Context) (string, error)
	SetMaintenance(ctx context.Context, enabled bool, message string) error
}

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) get(ctx context.Context, key string) (string, error) {
	var row Setting
	err := s.DB.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return row.Value, nil
}

func (s *GormStore) set(ctx context.Context, key, value string) error {
	var row Setting
	err := s.DB.WithContext(ctx).Where(Setting{Key: key}).FirstOrCreate(&row).Error
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Model(&row).Update("value", value).Error
}

func (s *GormStore) IsMaintenanceMode(ctx context.Context) (bool, error) {
	v, err := s.get(ctx, KeyMaintenanceMode)
	if err != nil || v == "" {
		return false, err
	}
	enabled, err := strconv.ParseBool(v)
	if err != nil {
		return false, nil
	}
	return enabled, nil
}

func (s *GormStore) MaintenanceMessage(ctx context.Context) (string, error) {
	v, err := s.get(ctx, KeyMaintenanceMessage)
	if err != nil {
		return "", err
	}
	if v == "" {
		return DefaultMaintenanceMessage, nil
	}
	return v, nil
}

func (s *GormStore) SetMaintenance(ctx context.Context, enabled bool, message string) error {
	if err := s.set(ctx, KeyMaintenanceMode, strconv.FormatBool(enabled)); err != nil {
		return err
	}
	return s.set(ctx, KeyMaintenanceMessage, message)
}

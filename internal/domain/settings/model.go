package settings

import "time"

// Setting is one key/value row of global configuration.
type Setting struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"size:64;not null;uniqueIndex:idx_settings_key"`
	Value     string
	UpdatedAt time.Time
}

const (
	KeyMaintenanceMode    = "maintenance_mode"
	KeyMaintenanceMessage = "maintenance_message"
)

const DefaultMaintenanceMessage = "We are performing scheduled maintenance. Please check back soon."

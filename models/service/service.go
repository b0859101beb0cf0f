package service

import (
	"time"
)

// Service is a catalog entry for a decoration package. Created and managed by
// admins only; read by everyone.
type Service struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ServiceName string  `gorm:"type:varchar(255);not null" json:"serviceName"`
	Cost        float64 `gorm:"not null" json:"cost"`
	Unit        string  `gorm:"type:varchar(50);not null" json:"unit"`
	Category    string  `gorm:"type:varchar(100);not null;index" json:"category"`
	Rating      float64 `gorm:"not null;default:0" json:"rating"`
	Description string  `gorm:"type:text" json:"description"`
	Image       string  `gorm:"type:varchar(2048)" json:"image"`

	CreatedByEmail string `gorm:"type:varchar(255);not null" json:"createdByEmail"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

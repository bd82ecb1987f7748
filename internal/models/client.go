package models

import (
	"time"

	"gorm.io/gorm"
)

type Client struct {
	ID         uint64         `gorm:"primarykey" json:"id"`
	Name       string         `gorm:"type:varchar(255);not null" json:"name"`
	Email      string         `gorm:"type:varchar(255)" json:"email"`
	Phone      string         `gorm:"type:varchar(50)" json:"phone"`
	Address    string         `gorm:"type:text" json:"address"`
	Company    string         `gorm:"type:varchar(255)" json:"company"`
	Notes      string         `gorm:"type:text" json:"notes"`
	HourlyRate float64        `gorm:"not null;default:0" json:"hourly_rate"`
	IsActive   bool           `gorm:"not null;default:true" json:"is_active"`
	OwnerID    uint64         `gorm:"not null;index" json:"owner_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Owner    User      `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Projects []Project `gorm:"foreignKey:ClientID" json:"projects,omitempty"`
}

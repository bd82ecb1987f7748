package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName     string         `gorm:"type:varchar(255);not null" json:"full_name"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Clients     []Client     `gorm:"foreignKey:OwnerID" json:"-"`
	Projects    []Project    `gorm:"foreignKey:OwnerID" json:"-"`
	Categories  []Category   `gorm:"foreignKey:OwnerID" json:"-"`
	TimeEntries []TimeEntry  `gorm:"foreignKey:UserID" json:"-"`
	Memberships []TeamMember `gorm:"foreignKey:UserID" json:"-"`
}

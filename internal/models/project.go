package models

import (
	"time"

	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

type Project struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Status      ProjectStatus  `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	HourlyRate  float64        `gorm:"not null;default:0" json:"hourly_rate"`
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
	StartDate   *time.Time     `json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`
	ClientID    uint64         `gorm:"not null;index" json:"client_id"`
	OwnerID     uint64         `gorm:"not null;index" json:"owner_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Client  Client       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Owner   User         `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Tasks   []Task       `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
	Members []TeamMember `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
}

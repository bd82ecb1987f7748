package models

import (
	"time"

	"gorm.io/gorm"
)

type TeamRole string

const (
	RoleAdmin   TeamRole = "admin"
	RoleManager TeamRole = "manager"
	RoleMember  TeamRole = "member"
	RoleViewer  TeamRole = "viewer"
)

// TeamMember binds a user to a project with a project-scoped role.
type TeamMember struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	ProjectID uint64         `gorm:"not null;index:idx_team_members_project_user,unique" json:"project_id"`
	UserID    uint64         `gorm:"not null;index:idx_team_members_project_user,unique" json:"user_id"`
	Role      TeamRole       `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

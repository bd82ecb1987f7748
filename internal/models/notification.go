package models

import (
	"time"

	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationTaskAssigned      NotificationType = "task_assigned"
	NotificationTaskUpdated       NotificationType = "task_updated"
	NotificationTaskCompleted     NotificationType = "task_completed"
	NotificationTimeEntryAdded    NotificationType = "time_entry_added"
	NotificationProjectUpdated    NotificationType = "project_updated"
	NotificationTeamMemberAdded   NotificationType = "team_member_added"
	NotificationTeamMemberRemoved NotificationType = "team_member_removed"
	NotificationReportGenerated   NotificationType = "report_generated"
)

type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityMedium NotificationPriority = "medium"
	NotificationPriorityHigh   NotificationPriority = "high"
)

type Notification struct {
	ID         uint64               `gorm:"primarykey" json:"id"`
	Type       NotificationType     `gorm:"type:varchar(50);not null" json:"type"`
	Title      string               `gorm:"type:varchar(255);not null" json:"title"`
	Message    string               `gorm:"type:text;not null" json:"message"`
	Priority   NotificationPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	IsRead     bool                 `gorm:"not null;default:false" json:"is_read"`
	IsArchived bool                 `gorm:"not null;default:false" json:"is_archived"`
	ReadAt     *time.Time           `json:"read_at"`
	UserID     uint64               `gorm:"not null;index" json:"user_id"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
	DeletedAt  gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

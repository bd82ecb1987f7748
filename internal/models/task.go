package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

type Task struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Status      TaskStatus     `gorm:"type:varchar(20);not null;default:'todo'" json:"status"`
	Priority    TaskPriority   `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	AssignedTo  *uint64        `gorm:"index" json:"assigned_to"`
	DueDate     *time.Time     `json:"due_date"`
	CategoryID  *uint64        `gorm:"index" json:"category_id"`
	ProjectID   uint64         `gorm:"not null;index" json:"project_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Project     Project     `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Assignee    *User       `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
	Category    *Category   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	TimeEntries []TimeEntry `gorm:"foreignKey:TaskID" json:"time_entries,omitempty"`
}

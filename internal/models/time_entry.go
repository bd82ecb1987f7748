package models

import (
	"time"

	"gorm.io/gorm"
)

// TimeEntry records work done against a task. UserID is the author and is
// immutable after creation; only the author may modify or delete the entry.
type TimeEntry struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Description string         `gorm:"type:text" json:"description"`
	Date        time.Time      `gorm:"not null;index" json:"date"`
	StartTime   time.Time      `gorm:"not null" json:"start_time"`
	EndTime     *time.Time     `json:"end_time"`
	Duration    float64        `gorm:"not null" json:"duration"` // minutes
	IsBillable  bool           `gorm:"not null;default:false" json:"is_billable"`
	TaskID      uint64         `gorm:"not null;index" json:"task_id"`
	UserID      uint64         `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

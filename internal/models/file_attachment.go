package models

import (
	"time"

	"gorm.io/gorm"
)

type AttachmentParent string

const (
	AttachmentParentClient    AttachmentParent = "client"
	AttachmentParentTimeEntry AttachmentParent = "time_entry"
)

// FileAttachment is metadata for an uploaded file. The bytes live in the
// blob store under StorageKey; this row only records where they are.
type FileAttachment struct {
	ID          uint64           `gorm:"primarykey" json:"id"`
	FileName    string           `gorm:"type:varchar(255);not null" json:"file_name"`
	ContentType string           `gorm:"type:varchar(100)" json:"content_type"`
	Size        int64            `gorm:"not null" json:"size"`
	StorageKey  string           `gorm:"type:varchar(100);uniqueIndex;not null" json:"-"`
	ParentKind  AttachmentParent `gorm:"type:varchar(20);not null;index:idx_attachments_parent" json:"parent_kind"`
	ParentID    uint64           `gorm:"not null;index:idx_attachments_parent" json:"parent_id"`
	UploadedBy  uint64           `gorm:"not null" json:"uploaded_by"`
	CreatedAt   time.Time        `json:"created_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

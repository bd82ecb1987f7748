package repository

import (
	"github.com/webgigs/work-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormAttachmentRepository is a GORM implementation of AttachmentRepository
type GormAttachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new AttachmentRepository
func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &GormAttachmentRepository{db: db}
}

// Create creates a new attachment record
func (r *GormAttachmentRepository) Create(attachment *models.FileAttachment) error {
	return r.db.Create(attachment).Error
}

// FindByID finds an attachment by ID
func (r *GormAttachmentRepository) FindByID(id uint64) (*models.FileAttachment, error) {
	var attachment models.FileAttachment
	if err := r.db.First(&attachment, id).Error; err != nil {
		return nil, err
	}
	return &attachment, nil
}

// ListByParent lists all attachments of a parent resource
func (r *GormAttachmentRepository) ListByParent(kind models.AttachmentParent, parentID uint64) ([]models.FileAttachment, error) {
	var attachments []models.FileAttachment
	if err := r.db.Where("parent_kind = ? AND parent_id = ?", kind, parentID).
		Order("file_attachments.created_at DESC").
		Find(&attachments).Error; err != nil {
		return nil, err
	}
	return attachments, nil
}

// Delete soft deletes an attachment record
func (r *GormAttachmentRepository) Delete(id uint64) error {
	return r.db.Delete(&models.FileAttachment{}, id).Error
}

package services

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/webgigs/work-tracker-api/internal/access"
	"github.com/webgigs/work-tracker-api/internal/models"
	"github.com/webgigs/work-tracker-api/internal/repository"
	"github.com/webgigs/work-tracker-api/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrAttachmentNotFound      = errors.New("attachment not found")
	ErrInvalidAttachmentParent = errors.New("invalid attachment parent")
	ErrEmptyFileName           = errors.New("file name cannot be empty")
)

// AttachmentService stores uploaded files and their metadata. Access follows
// the parent resource: whoever may write the parent may attach to it, whoever
// may read it may download.
type AttachmentService struct {
	attachmentRepo repository.AttachmentRepository
	blobs          storage.BlobStore
	checker        *access.Checker
}

// NewAttachmentService creates a new AttachmentService.
func NewAttachmentService(
	attachmentRepo repository.AttachmentRepository,
	blobs storage.BlobStore,
	checker *access.Checker,
) *AttachmentService {
	return &AttachmentService{
		attachmentRepo: attachmentRepo,
		blobs:          blobs,
		checker:        checker,
	}
}

// UploadInput represents an incoming file upload.
type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Upload stores a file against a client or time entry.
func (s *AttachmentService) Upload(actor uint64, kind models.AttachmentParent, parentID uint64, input UploadInput) (*models.FileAttachment, error) {
	if input.FileName == "" {
		return nil, ErrEmptyFileName
	}
	if err := s.authorizeParent(actor, access.OpWrite, kind, parentID); err != nil {
		return nil, err
	}

	key, err := s.blobs.Put(input.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	attachment := &models.FileAttachment{
		FileName:    input.FileName,
		ContentType: input.ContentType,
		Size:        input.Size,
		StorageKey:  key,
		ParentKind:  kind,
		ParentID:    parentID,
		UploadedBy:  actor,
	}
	if err := s.attachmentRepo.Create(attachment); err != nil {
		if cleanupErr := s.blobs.Delete(key); cleanupErr != nil {
			log.Printf("failed to clean up blob %s: %v", key, cleanupErr)
		}
		return nil, fmt.Errorf("failed to record attachment: %w", err)
	}
	return attachment, nil
}

// ListAttachments returns the attachments of a parent the actor may read.
func (s *AttachmentService) ListAttachments(actor uint64, kind models.AttachmentParent, parentID uint64) ([]models.FileAttachment, error) {
	if err := s.authorizeParent(actor, access.OpRead, kind, parentID); err != nil {
		return nil, err
	}

	attachments, err := s.attachmentRepo.ListByParent(kind, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	return attachments, nil
}

// Download opens an attachment's content. The caller closes the reader.
func (s *AttachmentService) Download(actor, id uint64) (*models.FileAttachment, io.ReadCloser, error) {
	attachment, err := s.find(id)
	if err != nil {
		return nil, nil, err
	}
	if err := s.authorizeParent(actor, access.OpRead, attachment.ParentKind, attachment.ParentID); err != nil {
		return nil, nil, err
	}

	content, err := s.blobs.Get(attachment.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrBlobNotFound) {
			return nil, nil, ErrAttachmentNotFound
		}
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	return attachment, content, nil
}

// DeleteAttachment removes an attachment and its stored bytes.
func (s *AttachmentService) DeleteAttachment(actor, id uint64) error {
	attachment, err := s.find(id)
	if err != nil {
		return err
	}
	if err := s.authorizeParent(actor, access.OpWrite, attachment.ParentKind, attachment.ParentID); err != nil {
		return err
	}

	if err := s.attachmentRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	if err := s.blobs.Delete(attachment.StorageKey); err != nil {
		log.Printf("failed to delete blob %s: %v", attachment.StorageKey, err)
	}
	return nil
}

func (s *AttachmentService) find(id uint64) (*models.FileAttachment, error) {
	attachment, err := s.attachmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}
	return attachment, nil
}

func (s *AttachmentService) authorizeParent(actor uint64, op access.Operation, kind models.AttachmentParent, parentID uint64) error {
	var ref access.ResourceRef
	var notFound error

	switch kind {
	case models.AttachmentParentClient:
		ref = access.ResourceRef{Kind: access.KindClient, ID: parentID}
		notFound = ErrClientNotFound
	case models.AttachmentParentTimeEntry:
		ref = access.ResourceRef{Kind: access.KindTimeEntry, ID: parentID}
		notFound = ErrTimeEntryNotFound
	default:
		return ErrInvalidAttachmentParent
	}

	decision, err := s.checker.Authorize(actor, op, ref)
	if err != nil {
		return fmt.Errorf("failed to authorize: %w", err)
	}
	return denialError(decision, notFound)
}

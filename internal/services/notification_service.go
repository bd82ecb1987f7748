package services

import (
	"errors"
	"fmt"

	"github.com/webgigs/work-tracker-api/internal/constants"
	"github.com/webgigs/work-tracker-api/internal/models"
	"github.com/webgigs/work-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService provides business logic for in-app notifications.
// Users only ever see and mutate their own.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
	}
}

// ListNotifications returns a page of the actor's notifications and the total
// matching count.
func (s *NotificationService) ListNotifications(actor uint64, filter repository.NotificationFilter) ([]models.Notification, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < constants.MinPageSize {
		filter.PageSize = constants.DefaultPageSize
	}
	if filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.MaxPageSize
	}

	notifications, total, err := s.notificationRepo.ListByUser(actor, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, total, nil
}

// MarkRead marks the given notifications read, or all unread ones when ids
// is empty. Only the actor's own rows are touched.
func (s *NotificationService) MarkRead(actor uint64, ids []uint64) error {
	if err := s.notificationRepo.MarkRead(actor, ids); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

// Archive archives the given notifications, or all of them when ids is empty.
func (s *NotificationService) Archive(actor uint64, ids []uint64) error {
	if err := s.notificationRepo.Archive(actor, ids); err != nil {
		return fmt.Errorf("failed to archive notifications: %w", err)
	}
	return nil
}

// DeleteNotification removes one of the actor's notifications.
func (s *NotificationService) DeleteNotification(actor, id uint64) error {
	notification, err := s.notificationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("failed to find notification: %w", err)
	}
	if notification.UserID != actor {
		return ErrNotificationNotFound
	}

	if err := s.notificationRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

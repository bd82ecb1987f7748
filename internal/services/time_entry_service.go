package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/webgigs/work-tracker-api/internal/access"
	"github.com/webgigs/work-tracker-api/internal/models"
	"github.com/webgigs/work-tracker-api/internal/repository"
)

var (
	ErrTimeEntryNotFound = errors.New("time entry not found")
	ErrInvalidDuration   = errors.New("duration must be positive")
	ErrInvalidEntryDate  = errors.New("entry date is required")
)

// TimeEntryService provides business logic for time entry operations. The
// entry's author is always the creating actor and never changes; mutation is
// limited to the author even when someone else owns the project.
type TimeEntryService struct {
	entryRepo repository.TimeEntryRepository
	checker   *access.Checker
}

// NewTimeEntryService creates a new TimeEntryService.
func NewTimeEntryService(entryRepo repository.TimeEntryRepository, checker *access.Checker) *TimeEntryService {
	return &TimeEntryService{
		entryRepo: entryRepo,
		checker:   checker,
	}
}

// TimeEntryInput represents parameters to create or update a time entry.
// Duration is in minutes.
type TimeEntryInput struct {
	Description string
	Date        time.Time
	StartTime   time.Time
	EndTime     *time.Time
	Duration    float64
	IsBillable  bool
}

// CreateTimeEntry logs time against a task in a project the actor owns.
func (s *TimeEntryService) CreateTimeEntry(actor, taskID uint64, input TimeEntryInput) (*models.TimeEntry, error) {
	if err := s.authorizeTask(actor, access.OpWrite, taskID); err != nil {
		return nil, err
	}
	if err := validateEntry(input); err != nil {
		return nil, err
	}

	entry := &models.TimeEntry{
		Description: input.Description,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Duration:    input.Duration,
		IsBillable:  input.IsBillable,
		TaskID:      taskID,
		UserID:      actor,
	}

	if err := s.entryRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}
	return entry, nil
}

// ListTimeEntries returns the entries of a task in a project the actor owns.
func (s *TimeEntryService) ListTimeEntries(actor, taskID uint64) ([]models.TimeEntry, error) {
	if err := s.authorizeTask(actor, access.OpRead, taskID); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListByTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	return entries, nil
}

// GetTimeEntry returns a time entry in a project the actor owns.
func (s *TimeEntryService) GetTimeEntry(actor, id uint64) (*models.TimeEntry, error) {
	if err := s.authorize(actor, access.OpRead, id); err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find time entry: %w", err)
	}
	return entry, nil
}

// UpdateTimeEntry updates an entry the actor authored. The author never
// changes.
func (s *TimeEntryService) UpdateTimeEntry(actor, id uint64, input TimeEntryInput) (*models.TimeEntry, error) {
	if err := s.authorize(actor, access.OpWrite, id); err != nil {
		return nil, err
	}
	if err := validateEntry(input); err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find time entry: %w", err)
	}

	entry.Description = input.Description
	entry.Date = input.Date
	entry.StartTime = input.StartTime
	entry.EndTime = input.EndTime
	entry.Duration = input.Duration
	entry.IsBillable = input.IsBillable

	if err := s.entryRepo.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update time entry: %w", err)
	}
	return entry, nil
}

// DeleteTimeEntry removes an entry the actor authored.
func (s *TimeEntryService) DeleteTimeEntry(actor, id uint64) error {
	if err := s.authorize(actor, access.OpDelete, id); err != nil {
		return err
	}

	if err := s.entryRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	return nil
}

func validateEntry(input TimeEntryInput) error {
	if input.Date.IsZero() {
		return ErrInvalidEntryDate
	}
	if input.Duration <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

func (s *TimeEntryService) authorize(actor uint64, op access.Operation, id uint64) error {
	decision, err := s.checker.Authorize(actor, op, access.ResourceRef{Kind: access.KindTimeEntry, ID: id})
	if err != nil {
		return fmt.Errorf("failed to authorize: %w", err)
	}
	return denialError(decision, ErrTimeEntryNotFound)
}

func (s *TimeEntryService) authorizeTask(actor uint64, op access.Operation, taskID uint64) error {
	decision, err := s.checker.Authorize(actor, op, access.ResourceRef{Kind: access.KindTask, ID: taskID})
	if err != nil {
		return fmt.Errorf("failed to authorize task: %w", err)
	}
	return denialError(decision, ErrTaskNotFound)
}

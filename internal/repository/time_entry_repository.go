package repository

import (
	"github.com/webgigs/work-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormTimeEntryRepository is a GORM implementation of TimeEntryRepository
type GormTimeEntryRepository struct {
	db *gorm.DB
}

// NewTimeEntryRepository creates a new TimeEntryRepository
func NewTimeEntryRepository(db *gorm.DB) TimeEntryRepository {
	return &GormTimeEntryRepository{db: db}
}

// Create creates a new time entry
func (r *GormTimeEntryRepository) Create(entry *models.TimeEntry) error {
	return r.db.Create(entry).Error
}

// FindByID finds a time entry by ID with optional preloading
func (r *GormTimeEntryRepository) FindByID(id uint64, preload ...string) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByTask lists all time entries of a task
func (r *GormTimeEntryRepository) ListByTask(taskID uint64) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	if err := r.db.Where("task_id = ?", taskID).
		Order("time_entries.start_time DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Update updates a time entry
func (r *GormTimeEntryRepository) Update(entry *models.TimeEntry) error {
	return r.db.Save(entry).Error
}

// Delete soft deletes a time entry
func (r *GormTimeEntryRepository) Delete(id uint64) error {
	return r.db.Delete(&models.TimeEntry{}, id).Error
}

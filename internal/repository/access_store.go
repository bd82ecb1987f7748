package repository

import (
	"github.com/webgigs/work-tracker-api/internal/access"
	"github.com/webgigs/work-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormAccessStore implements access.Store with plain lookups against the
// database. It does no authorization logic; the checker owns that.
type GormAccessStore struct {
	db *gorm.DB
}

// NewAccessStore creates an access.Store backed by the given database
func NewAccessStore(db *gorm.DB) access.Store {
	return &GormAccessStore{db: db}
}

// OwnerOf returns the owning user of a directly-owned resource. For a time
// entry the owner is its author.
func (s *GormAccessStore) OwnerOf(kind access.ResourceKind, id uint64) (uint64, error) {
	var owner uint64
	var err error

	switch kind {
	case access.KindClient:
		err = s.pluck(&models.Client{}, id, "owner_id", &owner)
	case access.KindProject:
		err = s.pluck(&models.Project{}, id, "owner_id", &owner)
	case access.KindCategory:
		err = s.pluck(&models.Category{}, id, "owner_id", &owner)
	case access.KindTimeEntry:
		err = s.pluck(&models.TimeEntry{}, id, "user_id", &owner)
	default:
		return 0, access.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return owner, nil
}

// ParentOf resolves one step up the ownership chain
func (s *GormAccessStore) ParentOf(kind access.ResourceKind, id uint64) (access.ResourceRef, error) {
	var parent uint64
	var err error

	switch kind {
	case access.KindTask:
		err = s.pluck(&models.Task{}, id, "project_id", &parent)
		return access.ResourceRef{Kind: access.KindProject, ID: parent}, err
	case access.KindTimeEntry:
		err = s.pluck(&models.TimeEntry{}, id, "task_id", &parent)
		return access.ResourceRef{Kind: access.KindTask, ID: parent}, err
	case access.KindTeamMember:
		err = s.pluck(&models.TeamMember{}, id, "project_id", &parent)
		return access.ResourceRef{Kind: access.KindProject, ID: parent}, err
	default:
		return access.ResourceRef{}, access.ErrNotFound
	}
}

// TeamMembers returns all memberships of a project, active or not
func (s *GormAccessStore) TeamMembers(projectID uint64) ([]access.Membership, error) {
	var rows []models.TeamMember
	if err := s.db.Where("project_id = ?", projectID).Find(&rows).Error; err != nil {
		return nil, err
	}

	memberships := make([]access.Membership, 0, len(rows))
	for _, row := range rows {
		memberships = append(memberships, access.Membership{
			MemberID: row.ID,
			UserID:   row.UserID,
			Role:     access.Role(row.Role),
			Active:   row.IsActive,
		})
	}
	return memberships, nil
}

func (s *GormAccessStore) pluck(model interface{}, id uint64, column string, dest *uint64) error {
	result := s.db.Model(model).
		Select(column).
		Where("id = ?", id).
		Limit(1).
		Scan(dest)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return access.ErrNotFound
	}
	return nil
}

package repository

import (
	"github.com/webgigs/work-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormTeamMemberRepository is a GORM implementation of TeamMemberRepository
type GormTeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new TeamMemberRepository
func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &GormTeamMemberRepository{db: db}
}

// Create creates a new team member
func (r *GormTeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// FindByID finds a team member by ID with optional preloading
func (r *GormTeamMemberRepository) FindByID(id uint64, preload ...string) (*models.TeamMember, error) {
	var member models.TeamMember
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByProject lists all members of a project with their users
func (r *GormTeamMemberRepository) ListByProject(projectID uint64) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := r.db.Preload("User").
		Where("project_id = ?", projectID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListByUser lists all memberships of a user with their projects
func (r *GormTeamMemberRepository) ListByUser(userID uint64) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := r.db.Preload("Project").
		Where("user_id = ?", userID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Update updates a team member
func (r *GormTeamMemberRepository) Update(member *models.TeamMember) error {
	return r.db.Save(member).Error
}

// Delete soft deletes a team member
func (r *GormTeamMemberRepository) Delete(id uint64) error {
	return r.db.Delete(&models.TeamMember{}, id).Error
}

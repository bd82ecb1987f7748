package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/webgigs/work-tracker-api/internal/access"
	"github.com/webgigs/work-tracker-api/internal/models"
	"github.com/webgigs/work-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTeamMemberNotFound = errors.New("team member not found")
	ErrInvalidTeamRole    = errors.New("invalid team role")
)

// TeamService provides business logic for project team management. Every
// mutation goes through the access checker, which enforces the manager gate
// and the last-admin rule.
type TeamService struct {
	memberRepo       repository.TeamMemberRepository
	projectRepo      repository.ProjectRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	checker          *access.Checker
}

// NewTeamService creates a new TeamService.
func NewTeamService(
	memberRepo repository.TeamMemberRepository,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	checker *access.Checker,
) *TeamService {
	return &TeamService{
		memberRepo:       memberRepo,
		projectRepo:      projectRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		checker:          checker,
	}
}

// ListTeam returns a project's members. The project owner and every member,
// whatever their role, may list the team.
func (s *TeamService) ListTeam(actor, projectID uint64) ([]models.TeamMember, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	members, err := s.memberRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	if project.OwnerID != actor && !isMember(members, actor) {
		return nil, ErrAccessDenied
	}
	return members, nil
}

// ListMemberships returns every project membership of the actor.
func (s *TeamService) ListMemberships(actor uint64) ([]models.TeamMember, error) {
	memberships, err := s.memberRepo.ListByUser(actor)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return memberships, nil
}

// AddMemberInput represents parameters to add a user to a project's team.
type AddMemberInput struct {
	UserID uint64
	Role   models.TeamRole
}

// AddMember adds a user to a project's team. A membership row for the pair,
// active or not, blocks the add.
func (s *TeamService) AddMember(actor, projectID uint64, input AddMemberInput) (*models.TeamMember, error) {
	role := input.Role
	if role == "" {
		role = models.RoleMember
	}
	if !validTeamRole(role) {
		return nil, ErrInvalidTeamRole
	}

	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	decision, err := s.checker.AuthorizeAddMember(actor, projectID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize: %w", err)
	}
	if err := denialError(decision, ErrProjectNotFound); err != nil {
		return nil, err
	}

	member := &models.TeamMember{
		ProjectID: projectID,
		UserID:    input.UserID,
		Role:      role,
		IsActive:  true,
	}
	if err := s.memberRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to add team member: %w", err)
	}

	s.notify(input.UserID, models.NotificationTeamMemberAdded, "Added to project team",
		fmt.Sprintf("You were added to a project team as %s", role))

	return member, nil
}

// UpdateMemberInput represents parameters to change a membership.
type UpdateMemberInput struct {
	Role     models.TeamRole
	IsActive *bool
}

// UpdateMember changes a membership's role or active flag. Demoting or
// deactivating the last active admin is refused.
func (s *TeamService) UpdateMember(actor, memberID uint64, input UpdateMemberInput) (*models.TeamMember, error) {
	member, err := s.memberRepo.FindByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to find team member: %w", err)
	}

	newRole := member.Role
	if input.Role != "" {
		if !validTeamRole(input.Role) {
			return nil, ErrInvalidTeamRole
		}
		newRole = input.Role
	}
	newActive := member.IsActive
	if input.IsActive != nil {
		newActive = *input.IsActive
	}

	decision, err := s.checker.AuthorizeUpdateMember(actor, member.ProjectID, memberID, access.Role(newRole), newActive)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize: %w", err)
	}
	if err := denialError(decision, ErrTeamMemberNotFound); err != nil {
		return nil, err
	}

	member.Role = newRole
	member.IsActive = newActive
	if err := s.memberRepo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}
	return member, nil
}

// RemoveMember removes a membership. The last active admin of a project
// cannot be removed.
func (s *TeamService) RemoveMember(actor, memberID uint64) error {
	member, err := s.memberRepo.FindByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamMemberNotFound
		}
		return fmt.Errorf("failed to find team member: %w", err)
	}

	decision, err := s.checker.AuthorizeRemoveMember(actor, member.ProjectID, memberID)
	if err != nil {
		return fmt.Errorf("failed to authorize: %w", err)
	}
	if err := denialError(decision, ErrTeamMemberNotFound); err != nil {
		return err
	}

	if err := s.memberRepo.Delete(memberID); err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
	}

	s.notify(member.UserID, models.NotificationTeamMemberRemoved, "Removed from project team",
		"You were removed from a project team")

	return nil
}

// notify creates an in-app notification. Failures are logged, not returned;
// the team operation itself already succeeded.
func (s *TeamService) notify(userID uint64, kind models.NotificationType, title, message string) {
	if s.notificationRepo == nil {
		return
	}
	notification := &models.Notification{
		Type:     kind,
		Title:    title,
		Message:  message,
		Priority: models.NotificationPriorityMedium,
		UserID:   userID,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		log.Printf("failed to create notification for user %d: %v", userID, err)
	}
}

func isMember(members []models.TeamMember, userID uint64) bool {
	for _, m := range members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

func validTeamRole(role models.TeamRole) bool {
	switch role {
	case models.RoleAdmin, models.RoleManager, models.RoleMember, models.RoleViewer:
		return true
	}
	return false
}

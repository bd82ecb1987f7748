package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/webgigs/work-tracker-api/internal/access"
	"github.com/webgigs/work-tracker-api/internal/models"
	"github.com/webgigs/work-tracker-api/internal/repository"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectName   = errors.New("project name cannot be empty")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrProjectHasTasks      = errors.New("project still has tasks")
)

// ProjectService provides business logic for project operations.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	checker     *access.Checker
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, checker *access.Checker) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		checker:     checker,
	}
}

// ProjectInput represents parameters to create or update a project.
type ProjectInput struct {
	Name        string
	Description string
	Status      models.ProjectStatus
	HourlyRate  float64
	ClientID    uint64
	StartDate   *time.Time
	EndDate     *time.Time
	IsActive    *bool
}

// CreateProject creates a new project owned by the actor. The referenced
// client must be owned by the actor as well.
func (s *ProjectService) CreateProject(actor uint64, input ProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidProjectName
	}

	status := input.Status
	if status == "" {
		status = models.ProjectStatusActive
	}
	if !validProjectStatus(status) {
		return nil, ErrInvalidProjectStatus
	}

	decision, err := s.checker.Authorize(actor, access.OpRead, access.ResourceRef{Kind: access.KindClient, ID: input.ClientID})
	if err != nil {
		return nil, fmt.Errorf("failed to authorize client: %w", err)
	}
	if err := denialError(decision, ErrClientNotFound); err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Status:      status,
		HourlyRate:  input.HourlyRate,
		IsActive:    true,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		ClientID:    input.ClientID,
		OwnerID:     actor,
	}
	if input.IsActive != nil {
		project.IsActive = *input.IsActive
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// ListProjects returns the actor's projects with their clients.
func (s *ProjectService) ListProjects(actor uint64) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByOwner(actor)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProject returns a project the actor owns.
func (s *ProjectService) GetProject(actor, id uint64) (*models.Project, error) {
	if err := s.authorize(actor, access.OpRead, id); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(id, "Client")
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// UpdateProject updates a project the actor owns.
func (s *ProjectService) UpdateProject(actor, id uint64, input ProjectInput) (*models.Project, error) {
	if err := s.authorize(actor, access.OpWrite, id); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidProjectName
	}
	if input.Status != "" && !validProjectStatus(input.Status) {
		return nil, ErrInvalidProjectStatus
	}

	if input.ClientID != 0 && input.ClientID != project.ClientID {
		decision, err := s.checker.Authorize(actor, access.OpRead, access.ResourceRef{Kind: access.KindClient, ID: input.ClientID})
		if err != nil {
			return nil, fmt.Errorf("failed to authorize client: %w", err)
		}
		if err := denialError(decision, ErrClientNotFound); err != nil {
			return nil, err
		}
		project.ClientID = input.ClientID
	}

	project.Name = strings.TrimSpace(input.Name)
	project.Description = input.Description
	if input.Status != "" {
		project.Status = input.Status
	}
	project.HourlyRate = input.HourlyRate
	project.StartDate = input.StartDate
	project.EndDate = input.EndDate
	if input.IsActive != nil {
		project.IsActive = *input.IsActive
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// DeleteProject removes a project the actor owns. A project with tasks
// cannot be deleted.
func (s *ProjectService) DeleteProject(actor, id uint64) error {
	if err := s.authorize(actor, access.OpDelete, id); err != nil {
		return err
	}

	count, err := s.projectRepo.CountTasks(id)
	if err != nil {
		return fmt.Errorf("failed to count project tasks: %w", err)
	}
	if count > 0 {
		return ErrProjectHasTasks
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *ProjectService) authorize(actor uint64, op access.Operation, id uint64) error {
	decision, err := s.checker.Authorize(actor, op, access.ResourceRef{Kind: access.KindProject, ID: id})
	if err != nil {
		return fmt.Errorf("failed to authorize: %w", err)
	}
	return denialError(decision, ErrProjectNotFound)
}

func validProjectStatus(status models.ProjectStatus) bool {
	switch status {
	case models.ProjectStatusActive, models.ProjectStatusOnHold, models.ProjectStatusCompleted:
		return true
	}
	return false
}
